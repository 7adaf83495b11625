package models

// Balance represents one participant's position across all expenses.
type Balance struct {
	ParticipantID string  `json:"participantId"`
	Paid          float64 `json:"paid"` // Sum of amounts this participant paid
	Owed          float64 `json:"owed"` // Sum of this participant's equal shares
	Net           float64 `json:"net"`  // Paid - Owed. Positive = owed money, Negative = owes money
}

// BalanceMap holds balances keyed by participant ID.
type BalanceMap map[string]Balance
