package models

import "github.com/google/uuid"

// DateLayout is the calendar date format used for Expense.Date.
const DateLayout = "2006-01-02"

// Expense represents a single shared payment.
// The full amount is credited to the payer and divided equally among Participants.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// Description is what the money was spent on (e.g., "Groceries", "Taxi").
	Description string `json:"description"`

	// Amount is the total paid. Always positive for stored expenses.
	Amount float64 `json:"amount"`

	// Date is the calendar date of the expense in DateLayout format.
	Date string `json:"date"`

	// PaidBy is the ID of the participant who paid.
	PaidBy string `json:"paidBy"`

	// Participants is the split set: IDs of the participants sharing this expense.
	// The payer may or may not be part of it.
	Participants []string `json:"participants"`
}

// NewExpenseID generates a new expense identifier.
func NewExpenseID() string {
	return uuid.New().String()
}

// Involves reports whether the participant pays for or shares this expense.
func (e Expense) Involves(participantID string) bool {
	if e.PaidBy == participantID {
		return true
	}
	for _, id := range e.Participants {
		if id == participantID {
			return true
		}
	}
	return false
}

// UniqueIDs drops repeated IDs, keeping first occurrences in order.
func UniqueIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
