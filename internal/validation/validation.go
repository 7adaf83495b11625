// Package validation checks user-supplied expenses before they enter the ledger.
package validation

import (
	"math"
	"strings"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

// Messages returned by ValidateExpense, one per violated rule.
const (
	MsgDescriptionRequired  = "description is required"
	MsgAmountNotPositive    = "amount must be greater than 0"
	MsgPayerRequired        = "payer is required"
	MsgPayerUnknown         = "selected payer is not a known participant"
	MsgParticipantsRequired = "at least one participant must share the expense"
	MsgParticipantsUnknown  = "some selected participants are not known participants"
	MsgDateInvalid          = "date must be a calendar date (YYYY-MM-DD)"
)

// Errors is a list of validation messages. It implements error so callers can
// pass a failed validation through an error return.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

// ValidateExpense checks a candidate expense against the known participants.
// All failing checks are reported, in order. An empty result means the expense is valid.
// An empty date is accepted; callers fill in a default.
func ValidateExpense(candidate models.Expense, participants []models.Participant) []string {
	var problems []string
	known := models.ParticipantIndex(participants)

	if strings.TrimSpace(candidate.Description) == "" {
		problems = append(problems, MsgDescriptionRequired)
	}

	if !(candidate.Amount > 0) || math.IsInf(candidate.Amount, 1) {
		problems = append(problems, MsgAmountNotPositive)
	}

	if candidate.PaidBy == "" {
		problems = append(problems, MsgPayerRequired)
	} else if _, ok := known[candidate.PaidBy]; !ok {
		problems = append(problems, MsgPayerUnknown)
	}

	if len(candidate.Participants) == 0 {
		problems = append(problems, MsgParticipantsRequired)
	} else {
		for _, id := range candidate.Participants {
			if _, ok := known[id]; !ok {
				problems = append(problems, MsgParticipantsUnknown)
				break
			}
		}
	}

	if candidate.Date != "" && !IsDate(candidate.Date) {
		problems = append(problems, MsgDateInvalid)
	}

	return problems
}

// IsDate reports whether s is a calendar date in models.DateLayout.
func IsDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}
