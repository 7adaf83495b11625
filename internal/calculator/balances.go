// Package calculator computes balances and settlement plans for a ledger.
// Every function here is pure: no I/O, no shared state, no errors.
package calculator

import (
	"math"

	"github.com/mmynk/splitledger/internal/models"
)

// Tolerance is the threshold below which a balance counts as settled.
// Half a currency minor unit absorbs floating point noise.
const Tolerance = 0.01

// IsSettled reports whether a net balance is within Tolerance of zero.
func IsSettled(net float64) bool {
	return math.Abs(net) <= Tolerance
}

// ComputeBalances derives each participant's paid, owed and net amounts.
//
// Algorithm:
// - Every participant starts at paid = owed = 0
// - For each expense: payer contributed +amount, each member of the split set owes amount/len(set)
// - The payer is not special-cased: if they share the expense, their own share is owed too
// - net = paid - owed
//
// IDs that do not belong to participants contribute nothing. An expense with an
// empty split set is skipped, since no share can be assigned.
func ComputeBalances(participants []models.Participant, expenses []models.Expense) models.BalanceMap {
	balances := make(map[string]*models.Balance, len(participants))
	for _, p := range participants {
		balances[p.ID] = &models.Balance{ParticipantID: p.ID}
	}

	for _, expense := range expenses {
		if len(expense.Participants) == 0 {
			continue
		}
		share := expense.Amount / float64(len(expense.Participants))

		if payer, ok := balances[expense.PaidBy]; ok {
			payer.Paid += expense.Amount
		}
		for _, id := range expense.Participants {
			if member, ok := balances[id]; ok {
				member.Owed += share
			}
		}
	}

	result := make(models.BalanceMap, len(balances))
	for id, bal := range balances {
		bal.Net = bal.Paid - bal.Owed
		result[id] = *bal
	}
	return result
}
