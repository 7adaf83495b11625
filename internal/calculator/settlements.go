package calculator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mmynk/splitledger/internal/models"
)

// Policy selects how creditors and debtors are paired.
type Policy int

const (
	// PolicySorted matches the largest outstanding creditor with the largest
	// outstanding debtor on every step. Usually yields fewer transfers.
	PolicySorted Policy = iota
	// PolicyStable matches creditors and debtors in participant order.
	PolicyStable
)

// String returns the config name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicySorted:
		return "sorted"
	case PolicyStable:
		return "stable"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a config value ("sorted" or "stable") to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sorted":
		return PolicySorted, nil
	case "stable":
		return PolicyStable, nil
	default:
		return PolicySorted, fmt.Errorf("unknown settlement policy %q", s)
	}
}

// SettlementOption configures ComputeSettlements.
type SettlementOption func(*settlementConfig)

type settlementConfig struct {
	policy Policy
}

// WithPolicy overrides the default PolicySorted.
func WithPolicy(p Policy) SettlementOption {
	return func(c *settlementConfig) {
		c.policy = p
	}
}

// party is a creditor or debtor with the amount still outstanding.
type party struct {
	id        string
	order     int
	remaining float64
}

// ComputeSettlements produces transfers that bring every balance within Tolerance of zero.
// Participants order the creditor and debtor queues; balances for IDs not in
// participants are ignored.
//
// Algorithm (greedy):
// - Creditors: net > Tolerance. Debtors: net < -Tolerance. Everyone else is left out
// - Take the head creditor and head debtor, transfer min(remaining) between them
// - Drop a party once its remaining amount is at or below Tolerance
// - Stop when either queue is empty
//
// Every step clears at least one party, so the plan has at most
// len(creditors)+len(debtors)-1 transfers. Residual drift between total credit
// and total debt is not represented.
func ComputeSettlements(balances models.BalanceMap, participants []models.Participant, opts ...SettlementOption) []models.Settlement {
	cfg := settlementConfig{policy: PolicySorted}
	for _, opt := range opts {
		opt(&cfg)
	}

	var creditors, debtors []*party
	for i, p := range participants {
		bal, ok := balances[p.ID]
		if !ok {
			continue
		}
		if bal.Net > Tolerance {
			creditors = append(creditors, &party{id: p.ID, order: i, remaining: bal.Net})
		} else if bal.Net < -Tolerance {
			debtors = append(debtors, &party{id: p.ID, order: i, remaining: -bal.Net})
		}
	}

	var settlements []models.Settlement
	for len(creditors) > 0 && len(debtors) > 0 {
		if cfg.policy == PolicySorted {
			sortByRemaining(creditors)
			sortByRemaining(debtors)
		}

		creditor := creditors[0]
		debtor := debtors[0]

		amount := min(creditor.remaining, debtor.remaining)
		settlements = append(settlements, models.Settlement{
			From:   debtor.id,
			To:     creditor.id,
			Amount: amount,
		})

		creditor.remaining -= amount
		debtor.remaining -= amount

		if creditor.remaining <= Tolerance {
			creditors = creditors[1:]
		}
		if debtor.remaining <= Tolerance {
			debtors = debtors[1:]
		}
	}

	return settlements
}

// sortByRemaining orders parties by remaining amount, descending, ties by participant order.
func sortByRemaining(parties []*party) {
	sort.SliceStable(parties, func(i, j int) bool {
		if parties[i].remaining != parties[j].remaining {
			return parties[i].remaining > parties[j].remaining
		}
		return parties[i].order < parties[j].order
	})
}
