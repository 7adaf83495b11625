// Package models defines the core domain models for splitledger.
//
// # Stored Models
//
// The following models make up the ledger state and are persisted:
//   - Participant: A person taking part in shared expenses
//   - Expense: A single payment split equally among a subset of participants
//
// # Derived Models
//
// The following models are computed from the ledger state on every read and are never stored:
//   - Balance: What one participant paid, owes, and their net position
//   - Settlement: A suggested transfer from a debtor to a creditor
//
// # Design Principles
//
// 1. **IDs over pointers**: Expenses reference participants by ID string
// 2. **Derived data is recomputed**: Balances and settlements are pure functions of the ledger
// 3. **Plain values**: Amounts are float64; rounding and formatting happen at presentation time
package models
