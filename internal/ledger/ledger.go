// Package ledger holds the application state and the reducers that change it.
//
// State is a plain value. Every reducer takes the current State and returns a
// new one; inputs are never modified, so callers can keep old states around
// (for undo, or to compare before and after).
package ledger

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/validation"
)

var (
	ErrEmptyName           = errors.New("participant name is required")
	ErrDuplicateName       = errors.New("a participant with that name already exists")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrExpenseNotFound     = errors.New("expense not found")
)

// today returns the default date for expenses entered without one.
var today = defaultToday

func defaultToday() string {
	return time.Now().Format(models.DateLayout)
}

// State is the full ledger: participants and expenses in insertion order.
type State struct {
	Participants []models.Participant `json:"participants"`
	Expenses     []models.Expense     `json:"expenses"`
}

// Participant looks up a participant by ID.
func (s State) Participant(id string) (models.Participant, bool) {
	for _, p := range s.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return models.Participant{}, false
}

// Expense looks up an expense by ID.
func (s State) Expense(id string) (models.Expense, bool) {
	for _, e := range s.Expenses {
		if e.ID == id {
			return e, true
		}
	}
	return models.Expense{}, false
}

// Clear returns an empty ledger.
func Clear() State {
	return State{}
}

// AddParticipant appends a participant with a new ID.
// Names are trimmed and must be unique, ignoring case.
func AddParticipant(s State, name string) (State, models.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, models.Participant{}, ErrEmptyName
	}
	if nameTaken(s.Participants, name, "") {
		return s, models.Participant{}, ErrDuplicateName
	}

	p := models.NewParticipant(name)
	next := s.clone()
	next.Participants = append(next.Participants, p)
	return next, p, nil
}

// ParticipantUpdate lists the fields to change. Nil fields are left as they are.
type ParticipantUpdate struct {
	Name         *string
	TransferInfo *string
}

// UpdateParticipant renames a participant and/or changes their transfer info.
func UpdateParticipant(s State, id string, upd ParticipantUpdate) (State, models.Participant, error) {
	idx := slices.IndexFunc(s.Participants, func(p models.Participant) bool { return p.ID == id })
	if idx < 0 {
		return s, models.Participant{}, ErrParticipantNotFound
	}

	p := s.Participants[idx]
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return s, models.Participant{}, ErrEmptyName
		}
		if nameTaken(s.Participants, name, id) {
			return s, models.Participant{}, ErrDuplicateName
		}
		p.Name = name
	}
	if upd.TransferInfo != nil {
		p.TransferInfo = strings.TrimSpace(*upd.TransferInfo)
	}

	next := s.clone()
	next.Participants[idx] = p
	return next, p, nil
}

// RemoveParticipant deletes a participant together with every expense they pay
// for or share. It returns the number of expenses removed.
func RemoveParticipant(s State, id string) (State, int, error) {
	if _, ok := s.Participant(id); !ok {
		return s, 0, ErrParticipantNotFound
	}

	next := State{
		Participants: make([]models.Participant, 0, len(s.Participants)-1),
		Expenses:     make([]models.Expense, 0, len(s.Expenses)),
	}
	for _, p := range s.Participants {
		if p.ID != id {
			next.Participants = append(next.Participants, p)
		}
	}
	for _, e := range s.Expenses {
		if !e.Involves(id) {
			next.Expenses = append(next.Expenses, e)
		}
	}
	return next, len(s.Expenses) - len(next.Expenses), nil
}

// ExpenseInput is the user-editable part of an expense.
type ExpenseInput struct {
	Description  string
	Amount       float64
	Date         string
	PaidBy       string
	Participants []string
}

// AddExpense validates the input and appends a new expense.
// A failed validation is returned as validation.Errors.
// An empty date defaults to today.
func AddExpense(s State, in ExpenseInput) (State, models.Expense, error) {
	e := in.expense(models.NewExpenseID())
	if e.Date == "" {
		e.Date = today()
	}
	if problems := validation.ValidateExpense(e, s.Participants); len(problems) > 0 {
		return s, models.Expense{}, validation.Errors(problems)
	}

	next := s.clone()
	next.Expenses = append(next.Expenses, e)
	return next, e, nil
}

// UpdateExpense replaces the editable fields of an existing expense.
// An empty date keeps the previous one.
func UpdateExpense(s State, id string, in ExpenseInput) (State, models.Expense, error) {
	idx := slices.IndexFunc(s.Expenses, func(e models.Expense) bool { return e.ID == id })
	if idx < 0 {
		return s, models.Expense{}, ErrExpenseNotFound
	}

	e := in.expense(id)
	if e.Date == "" {
		e.Date = s.Expenses[idx].Date
	}
	if problems := validation.ValidateExpense(e, s.Participants); len(problems) > 0 {
		return s, models.Expense{}, validation.Errors(problems)
	}

	next := s.clone()
	next.Expenses[idx] = e
	return next, e, nil
}

// RemoveExpense deletes an expense.
func RemoveExpense(s State, id string) (State, error) {
	idx := slices.IndexFunc(s.Expenses, func(e models.Expense) bool { return e.ID == id })
	if idx < 0 {
		return s, ErrExpenseNotFound
	}

	next := s.clone()
	next.Expenses = slices.Delete(next.Expenses, idx, idx+1)
	return next, nil
}

// Summary is everything derived from a State for display.
type Summary struct {
	Balances     models.BalanceMap
	Settlements  []models.Settlement
	Expenses     calculator.ExpenseSummary
	Participants []calculator.ParticipantSummary
}

// Summarize computes balances, the settlement plan and statistics.
func Summarize(s State, opts ...calculator.SettlementOption) Summary {
	balances := calculator.ComputeBalances(s.Participants, s.Expenses)
	return Summary{
		Balances:     balances,
		Settlements:  calculator.ComputeSettlements(balances, s.Participants, opts...),
		Expenses:     calculator.ExpenseStats(s.Expenses),
		Participants: calculator.ParticipantStats(s.Participants, s.Expenses, balances),
	}
}

func (in ExpenseInput) expense(id string) models.Expense {
	return models.Expense{
		ID:           id,
		Description:  strings.TrimSpace(in.Description),
		Amount:       in.Amount,
		Date:         strings.TrimSpace(in.Date),
		PaidBy:       in.PaidBy,
		Participants: models.UniqueIDs(in.Participants),
	}
}

// clone copies the slices so the returned state shares nothing mutable with s.
func (s State) clone() State {
	next := State{
		Participants: slices.Clone(s.Participants),
		Expenses:     make([]models.Expense, len(s.Expenses)),
	}
	for i, e := range s.Expenses {
		e.Participants = slices.Clone(e.Participants)
		next.Expenses[i] = e
	}
	return next
}

func nameTaken(participants []models.Participant, name, exceptID string) bool {
	for _, p := range participants {
		if p.ID != exceptID && strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}
