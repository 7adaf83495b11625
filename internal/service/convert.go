package service

import (
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/report"
	"github.com/mmynk/splitledger/pkg/api"
)

func toAPIParticipant(p models.Participant) *api.Participant {
	return &api.Participant{
		Id:           p.ID,
		Name:         p.Name,
		TransferInfo: p.TransferInfo,
	}
}

func toAPIExpense(e models.Expense) *api.Expense {
	participants := e.Participants
	if participants == nil {
		participants = []string{}
	}
	return &api.Expense{
		Id:           e.ID,
		Description:  e.Description,
		Amount:       e.Amount,
		Date:         e.Date,
		PaidBy:       e.PaidBy,
		Participants: participants,
	}
}

// toExpenseInput treats a missing message as an empty expense so validation reports it.
func toExpenseInput(in *api.ExpenseInput) ledger.ExpenseInput {
	if in == nil {
		return ledger.ExpenseInput{}
	}
	return ledger.ExpenseInput{
		Description:  in.Description,
		Amount:       in.Amount,
		Date:         in.Date,
		PaidBy:       in.PaidBy,
		Participants: in.Participants,
	}
}

func toAPILedger(s ledger.State) *api.GetLedgerResponse {
	resp := &api.GetLedgerResponse{
		Participants: make([]*api.Participant, len(s.Participants)),
		Expenses:     make([]*api.Expense, len(s.Expenses)),
	}
	for i, p := range s.Participants {
		resp.Participants[i] = toAPIParticipant(p)
	}
	for i, e := range s.Expenses {
		resp.Expenses[i] = toAPIExpense(e)
	}
	return resp
}

// toAPIBalances lists balances in participant order.
func toAPIBalances(participants []models.Participant, balances models.BalanceMap) []*api.Balance {
	out := make([]*api.Balance, 0, len(participants))
	for _, p := range participants {
		b := balances[p.ID]
		out = append(out, &api.Balance{
			ParticipantId: p.ID,
			Name:          p.Name,
			Paid:          calculator.RoundCents(b.Paid),
			Owed:          calculator.RoundCents(b.Owed),
			Net:           calculator.RoundCents(b.Net),
			Settled:       calculator.IsSettled(b.Net),
		})
	}
	return out
}

func toAPISettlements(s ledger.State, settlements []models.Settlement) []*api.Settlement {
	out := make([]*api.Settlement, len(settlements))
	for i, st := range settlements {
		from, _ := s.Participant(st.From)
		to, _ := s.Participant(st.To)
		out[i] = &api.Settlement{
			From:           st.From,
			FromName:       from.Name,
			To:             st.To,
			ToName:         to.Name,
			Amount:         calculator.RoundCents(st.Amount),
			ToTransferInfo: to.TransferInfo,
		}
	}
	return out
}

func toAPIExpenseStats(st calculator.ExpenseSummary) *api.ExpenseStats {
	return &api.ExpenseStats{
		TotalAmount:     st.TotalAmount,
		ExpenseCount:    st.ExpenseCount,
		AverageExpense:  st.AverageExpense,
		LargestExpense:  st.LargestExpense,
		SmallestExpense: st.SmallestExpense,
	}
}

func toAPIParticipantStats(stats []calculator.ParticipantSummary) []*api.ParticipantStats {
	out := make([]*api.ParticipantStats, len(stats))
	for i, st := range stats {
		out[i] = &api.ParticipantStats{
			Id:           st.ID,
			Name:         st.Name,
			Balance:      st.Balance,
			TotalPaid:    st.TotalPaid,
			TotalOwed:    st.TotalOwed,
			ExpenseCount: st.ExpenseCount,
			PaidCount:    st.PaidCount,
		}
	}
	return out
}

// toTransfers resolves participant names for the text report.
func toTransfers(s ledger.State, settlements []models.Settlement) []report.Transfer {
	out := make([]report.Transfer, len(settlements))
	for i, st := range settlements {
		from, _ := s.Participant(st.From)
		to, _ := s.Participant(st.To)
		out[i] = report.Transfer{From: from.Name, To: to.Name, Amount: st.Amount}
	}
	return out
}
