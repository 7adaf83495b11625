package models

// Settlement represents a suggested transfer that reduces two outstanding balances.
// Settlements are advisory; nothing is ever paid by the system.
type Settlement struct {
	// From is the participant who owes money (debtor).
	From string `json:"from"`

	// To is the participant who is owed money (creditor).
	To string `json:"to"`

	// Amount is the transfer amount. Always positive.
	Amount float64 `json:"amount"`
}
