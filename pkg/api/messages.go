// Package api defines the LedgerService RPC contract: message types, procedure
// names, a Connect handler constructor and a typed client.
package api

import "encoding/json"

type Participant struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	TransferInfo string `json:"transferInfo,omitempty"`
}

type Expense struct {
	Id           string   `json:"id"`
	Description  string   `json:"description"`
	Amount       float64  `json:"amount"`
	Date         string   `json:"date"`
	PaidBy       string   `json:"paidBy"`
	Participants []string `json:"participants"`
}

// ExpenseInput is the editable part of an expense. Date is optional.
type ExpenseInput struct {
	Description  string   `json:"description"`
	Amount       float64  `json:"amount"`
	Date         string   `json:"date,omitempty"`
	PaidBy       string   `json:"paidBy"`
	Participants []string `json:"participants"`
}

type Balance struct {
	ParticipantId string  `json:"participantId"`
	Name          string  `json:"name"`
	Paid          float64 `json:"paid"`
	Owed          float64 `json:"owed"`
	Net           float64 `json:"net"`
	Settled       bool    `json:"settled"`
}

// Settlement is a suggested transfer. ToTransferInfo carries the recipient's
// payment details so the payer can act on it.
type Settlement struct {
	From           string  `json:"from"`
	FromName       string  `json:"fromName"`
	To             string  `json:"to"`
	ToName         string  `json:"toName"`
	Amount         float64 `json:"amount"`
	ToTransferInfo string  `json:"toTransferInfo,omitempty"`
}

type ExpenseStats struct {
	TotalAmount     float64 `json:"totalAmount"`
	ExpenseCount    int     `json:"expenseCount"`
	AverageExpense  float64 `json:"averageExpense"`
	LargestExpense  float64 `json:"largestExpense"`
	SmallestExpense float64 `json:"smallestExpense"`
}

type ParticipantStats struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	Balance      float64 `json:"balance"`
	TotalPaid    float64 `json:"totalPaid"`
	TotalOwed    float64 `json:"totalOwed"`
	ExpenseCount int     `json:"expenseCount"`
	PaidCount    int     `json:"paidCount"`
}

type GetLedgerRequest struct{}

type GetLedgerResponse struct {
	Participants []*Participant `json:"participants"`
	Expenses     []*Expense     `json:"expenses"`
}

type AddParticipantRequest struct {
	Name string `json:"name"`
}

type AddParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

// UpdateParticipantRequest changes the fields that are set.
type UpdateParticipantRequest struct {
	ParticipantId string  `json:"participantId"`
	Name          *string `json:"name,omitempty"`
	TransferInfo  *string `json:"transferInfo,omitempty"`
}

type UpdateParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type RemoveParticipantRequest struct {
	ParticipantId string `json:"participantId"`
}

type RemoveParticipantResponse struct {
	// RemovedExpenses counts expenses deleted because they referenced the participant.
	RemovedExpenses int `json:"removedExpenses"`
}

type AddExpenseRequest struct {
	Expense *ExpenseInput `json:"expense"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type UpdateExpenseRequest struct {
	ExpenseId string        `json:"expenseId"`
	Expense   *ExpenseInput `json:"expense"`
}

type UpdateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type RemoveExpenseRequest struct {
	ExpenseId string `json:"expenseId"`
}

type RemoveExpenseResponse struct{}

type ValidateExpenseRequest struct {
	Expense *ExpenseInput `json:"expense"`
}

type ValidateExpenseResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type GetBalancesRequest struct {
	// Policy overrides the server's settlement policy ("sorted" or "stable").
	Policy string `json:"policy,omitempty"`
}

type GetBalancesResponse struct {
	Balances         []*Balance          `json:"balances"`
	Settlements      []*Settlement       `json:"settlements"`
	ExpenseStats     *ExpenseStats       `json:"expenseStats"`
	ParticipantStats []*ParticipantStats `json:"participantStats"`
}

type GetSettlementReportRequest struct {
	// Policy overrides the server's settlement policy ("sorted" or "stable").
	Policy string `json:"policy,omitempty"`
}

type GetSettlementReportResponse struct {
	Lines        []string `json:"lines"`
	Instructions []string `json:"instructions"`
	Total        string   `json:"total"`
}

type ExportLedgerRequest struct{}

type ExportLedgerResponse struct {
	Document json.RawMessage `json:"document"`
}

type ImportLedgerRequest struct {
	Document json.RawMessage `json:"document"`
}

type ImportLedgerResponse struct {
	Participants int `json:"participants"`
	Expenses     int `json:"expenses"`
}

type ClearLedgerRequest struct{}

type ClearLedgerResponse struct{}
