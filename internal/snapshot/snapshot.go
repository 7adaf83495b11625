// Package snapshot encodes ledger state for storage and checks it on the way back in.
//
// Decode is the only entry point for data that was not produced by the ledger
// reducers in this process (saved state, imported files). It either returns a
// sanitized ledger.State or a *CorruptedError listing every problem found.
package snapshot

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/validation"
)

// Version is the current document format version.
const Version = 1

// Document is the stored JSON shape of a ledger.
type Document struct {
	Version      int                  `json:"version"`
	Participants []models.Participant `json:"participants"`
	Expenses     []models.Expense     `json:"expenses"`
}

// CorruptedError reports stored data that failed the schema check.
type CorruptedError struct {
	Details []string
}

func (e *CorruptedError) Error() string {
	if len(e.Details) == 1 {
		return "corrupted ledger data: " + e.Details[0]
	}
	return fmt.Sprintf("corrupted ledger data: %d problems: %s", len(e.Details), strings.Join(e.Details, "; "))
}

// Encode serializes a state as a versioned JSON document.
func Encode(s ledger.State) ([]byte, error) {
	doc := Document{
		Version:      Version,
		Participants: s.Participants,
		Expenses:     s.Expenses,
	}
	if doc.Participants == nil {
		doc.Participants = []models.Participant{}
	}
	if doc.Expenses == nil {
		doc.Expenses = []models.Expense{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Raw shapes mirror Document with every field optional, so missing fields can
// be told apart from zero values.
type rawDocument struct {
	Version      *int              `json:"version"`
	Participants *[]rawParticipant `json:"participants"`
	Expenses     *[]rawExpense     `json:"expenses"`
}

type rawParticipant struct {
	ID           *string `json:"id"`
	Name         *string `json:"name"`
	TransferInfo *string `json:"transferInfo"`
}

type rawExpense struct {
	ID           *string   `json:"id"`
	Description  *string   `json:"description"`
	Amount       *float64  `json:"amount"`
	Date         *string   `json:"date"`
	PaidBy       *string   `json:"paidBy"`
	Participants *[]string `json:"participants"`
}

// Decode parses and checks a stored document.
func Decode(data []byte) (ledger.State, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return ledger.State{}, &CorruptedError{Details: []string{fmt.Sprintf("invalid JSON: %v", err)}}
	}

	var problems []string
	if raw.Version != nil && *raw.Version > Version {
		problems = append(problems, fmt.Sprintf("unsupported version %d", *raw.Version))
	}

	state := ledger.State{}
	participantIDs := make(map[string]bool)

	if raw.Participants == nil {
		problems = append(problems, "participant list is missing")
	} else {
		for i, rp := range *raw.Participants {
			p, errs := checkParticipant(i+1, rp)
			problems = append(problems, errs...)
			if len(errs) > 0 {
				continue
			}
			if participantIDs[p.ID] {
				problems = append(problems, fmt.Sprintf("participant %d has a duplicate ID", i+1))
				continue
			}
			participantIDs[p.ID] = true
			state.Participants = append(state.Participants, p)
		}
	}

	if raw.Expenses == nil {
		problems = append(problems, "expense list is missing")
	} else {
		expenseIDs := make(map[string]bool)
		for i, re := range *raw.Expenses {
			e, errs := checkExpense(i+1, re, participantIDs)
			problems = append(problems, errs...)
			if len(errs) > 0 {
				continue
			}
			if expenseIDs[e.ID] {
				problems = append(problems, fmt.Sprintf("expense %d has a duplicate ID", i+1))
				continue
			}
			expenseIDs[e.ID] = true
			state.Expenses = append(state.Expenses, e)
		}
	}

	if len(problems) > 0 {
		return ledger.State{}, &CorruptedError{Details: problems}
	}
	return state, nil
}

func checkParticipant(n int, rp rawParticipant) (models.Participant, []string) {
	var problems []string
	if rp.ID == nil || strings.TrimSpace(*rp.ID) == "" {
		problems = append(problems, fmt.Sprintf("participant %d has an invalid ID", n))
	}
	if rp.Name == nil || strings.TrimSpace(*rp.Name) == "" {
		problems = append(problems, fmt.Sprintf("participant %d has an invalid name", n))
	}
	if len(problems) > 0 {
		return models.Participant{}, problems
	}

	p := models.Participant{
		ID:   strings.TrimSpace(*rp.ID),
		Name: strings.TrimSpace(*rp.Name),
	}
	if rp.TransferInfo != nil {
		p.TransferInfo = strings.TrimSpace(*rp.TransferInfo)
	}
	return p, nil
}

func checkExpense(n int, re rawExpense, participantIDs map[string]bool) (models.Expense, []string) {
	var problems []string
	if re.ID == nil || strings.TrimSpace(*re.ID) == "" {
		problems = append(problems, fmt.Sprintf("expense %d has an invalid ID", n))
	}
	if re.Description == nil || strings.TrimSpace(*re.Description) == "" {
		problems = append(problems, fmt.Sprintf("expense %d has an invalid description", n))
	}
	if re.Amount == nil || !(*re.Amount > 0) || math.IsInf(*re.Amount, 1) {
		problems = append(problems, fmt.Sprintf("expense %d has an invalid amount", n))
	}
	var paidBy string
	if re.PaidBy != nil {
		paidBy = strings.TrimSpace(*re.PaidBy)
	}
	if !participantIDs[paidBy] {
		problems = append(problems, fmt.Sprintf("expense %d has an invalid payer", n))
	}

	var split []string
	if re.Participants != nil {
		split = make([]string, len(*re.Participants))
		for i, id := range *re.Participants {
			split[i] = strings.TrimSpace(id)
		}
		split = models.UniqueIDs(split)
	}
	if len(split) == 0 {
		problems = append(problems, fmt.Sprintf("expense %d has invalid participants", n))
	} else {
		for _, id := range split {
			if !participantIDs[id] {
				problems = append(problems, fmt.Sprintf("expense %d references an unknown participant", n))
				break
			}
		}
	}
	if re.Date == nil || !validation.IsDate(*re.Date) {
		problems = append(problems, fmt.Sprintf("expense %d has an invalid date", n))
	}
	if len(problems) > 0 {
		return models.Expense{}, problems
	}

	return models.Expense{
		ID:           strings.TrimSpace(*re.ID),
		Description:  strings.TrimSpace(*re.Description),
		Amount:       *re.Amount,
		Date:         *re.Date,
		PaidBy:       paidBy,
		Participants: split,
	}, nil
}
