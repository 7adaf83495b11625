package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// cents is the number of decimal places kept in statistics.
const cents = 2

// ExpenseSummary aggregates all expenses of a ledger.
type ExpenseSummary struct {
	TotalAmount     float64 `json:"totalAmount"`
	ExpenseCount    int     `json:"expenseCount"`
	AverageExpense  float64 `json:"averageExpense"`
	LargestExpense  float64 `json:"largestExpense"`
	SmallestExpense float64 `json:"smallestExpense"`
}

// ParticipantSummary describes one participant's involvement in the ledger.
type ParticipantSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Balance      float64 `json:"balance"`
	TotalPaid    float64 `json:"totalPaid"`
	TotalOwed    float64 `json:"totalOwed"`
	ExpenseCount int     `json:"expenseCount"` // Expenses this participant shares
	PaidCount    int     `json:"paidCount"`    // Expenses this participant paid
}

// ExpenseStats summarizes expenses. All fields are zero for an empty list.
func ExpenseStats(expenses []models.Expense) ExpenseSummary {
	if len(expenses) == 0 {
		return ExpenseSummary{}
	}

	total := decimal.Zero
	largest := expenses[0].Amount
	smallest := expenses[0].Amount
	for _, e := range expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
		largest = max(largest, e.Amount)
		smallest = min(smallest, e.Amount)
	}

	count := decimal.NewFromInt(int64(len(expenses)))
	return ExpenseSummary{
		TotalAmount:     total.Round(cents).InexactFloat64(),
		ExpenseCount:    len(expenses),
		AverageExpense:  total.DivRound(count, cents).InexactFloat64(),
		LargestExpense:  largest,
		SmallestExpense: smallest,
	}
}

// ParticipantStats reports per-participant totals in participant order.
// Balance comes from balances; participants missing from it show a zero balance.
func ParticipantStats(participants []models.Participant, expenses []models.Expense, balances models.BalanceMap) []ParticipantSummary {
	stats := make([]ParticipantSummary, 0, len(participants))
	for _, p := range participants {
		summary := ParticipantSummary{ID: p.ID, Name: p.Name}
		paid := decimal.Zero
		owed := decimal.Zero

		for _, e := range expenses {
			if e.PaidBy == p.ID {
				paid = paid.Add(decimal.NewFromFloat(e.Amount))
				summary.PaidCount++
			}
			for _, id := range e.Participants {
				if id == p.ID {
					owed = owed.Add(decimal.NewFromFloat(e.Amount / float64(len(e.Participants))))
					summary.ExpenseCount++
					break
				}
			}
		}

		summary.TotalPaid = paid.Round(cents).InexactFloat64()
		summary.TotalOwed = owed.Round(cents).InexactFloat64()
		summary.Balance = RoundCents(balances[p.ID].Net)
		stats = append(stats, summary)
	}
	return stats
}

// RoundCents rounds an amount half away from zero to two decimal places.
func RoundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(cents).InexactFloat64()
}
