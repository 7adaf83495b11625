package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	alice   = models.Participant{ID: "a", Name: "Alice"}
	bob     = models.Participant{ID: "b", Name: "Bob"}
	charlie = models.Participant{ID: "c", Name: "Charlie"}
	trio    = []models.Participant{alice, bob, charlie}
)

func expense(amount float64, paidBy string, participants ...string) models.Expense {
	return models.Expense{
		ID:           paidBy + "-expense",
		Description:  "expense",
		Amount:       amount,
		Date:         "2024-03-01",
		PaidBy:       paidBy,
		Participants: participants,
	}
}

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name         string
		participants []models.Participant
		expenses     []models.Expense
		wantNet      map[string]float64
		validateFunc func(t *testing.T, balances models.BalanceMap)
	}{
		{
			name:         "one expense split three ways",
			participants: trio,
			expenses:     []models.Expense{expense(30, "a", "a", "b", "c")},
			wantNet:      map[string]float64{"a": 20, "b": -10, "c": -10},
			validateFunc: func(t *testing.T, balances models.BalanceMap) {
				// Alice paid 30 and owes her own share of 10
				if math.Abs(balances["a"].Paid-30) > Tolerance {
					t.Errorf("Alice paid = %v, want 30", balances["a"].Paid)
				}
				if math.Abs(balances["a"].Owed-10) > Tolerance {
					t.Errorf("Alice owed = %v, want 10", balances["a"].Owed)
				}
			},
		},
		{
			name:         "overlapping split sets",
			participants: trio,
			expenses: []models.Expense{
				expense(60, "a", "a", "b", "c"),
				expense(30, "b", "a", "b"),
				expense(45, "c", "b", "c"),
			},
			// A: 60 - 20 - 15 = 25; B: 30 - 20 - 15 - 22.5 = -27.5; C: 45 - 20 - 22.5 = 2.5
			wantNet: map[string]float64{"a": 25, "b": -27.5, "c": 2.5},
		},
		{
			name:         "payer outside the split set",
			participants: trio,
			expenses:     []models.Expense{expense(20, "a", "b", "c")},
			wantNet:      map[string]float64{"a": 20, "b": -10, "c": -10},
		},
		{
			name:         "no expenses",
			participants: trio,
			expenses:     nil,
			wantNet:      map[string]float64{"a": 0, "b": 0, "c": 0},
		},
		{
			name:         "unknown payer is a no-op contribution",
			participants: trio,
			expenses:     []models.Expense{expense(30, "ghost", "a", "b", "c")},
			wantNet:      map[string]float64{"a": -10, "b": -10, "c": -10},
			validateFunc: func(t *testing.T, balances models.BalanceMap) {
				if _, ok := balances["ghost"]; ok {
					t.Error("unknown payer should not get a balance entry")
				}
			},
		},
		{
			name:         "unknown split member is a no-op contribution",
			participants: []models.Participant{alice, bob},
			expenses:     []models.Expense{expense(30, "a", "a", "b", "ghost")},
			wantNet:      map[string]float64{"a": 20, "b": -10},
		},
		{
			name:         "empty split set is skipped",
			participants: []models.Participant{alice, bob},
			expenses:     []models.Expense{expense(30, "a")},
			wantNet:      map[string]float64{"a": 0, "b": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := ComputeBalances(tt.participants, tt.expenses)

			if len(balances) != len(tt.participants) {
				t.Errorf("got %d balances, want %d", len(balances), len(tt.participants))
			}
			for id, want := range tt.wantNet {
				got, ok := balances[id]
				if !ok {
					t.Errorf("missing balance for %s", id)
					continue
				}
				if math.Abs(got.Net-want) > Tolerance {
					t.Errorf("%s net = %v, want %v", id, got.Net, want)
				}
				if math.Abs(got.Net-(got.Paid-got.Owed)) > 1e-9 {
					t.Errorf("%s net %v != paid %v - owed %v", id, got.Net, got.Paid, got.Owed)
				}
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, balances)
			}
		})
	}
}

func TestIsSettled(t *testing.T) {
	tests := []struct {
		net  float64
		want bool
	}{
		{0, true},
		{0.01, true},
		{-0.01, true},
		{0.011, false},
		{-0.5, false},
	}
	for _, tt := range tests {
		if got := IsSettled(tt.net); got != tt.want {
			t.Errorf("IsSettled(%v) = %v, want %v", tt.net, got, tt.want)
		}
	}
}
