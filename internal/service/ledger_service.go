// Package service implements the LedgerService RPC handlers on top of the
// ledger reducers.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/report"
	"github.com/mmynk/splitledger/internal/snapshot"
	"github.com/mmynk/splitledger/internal/validation"
	"github.com/mmynk/splitledger/pkg/api"
)

// Committer receives every new ledger state. persist.Committer implements it.
type Committer interface {
	Commit(ledger.State)
}

type nopCommitter struct{}

func (nopCommitter) Commit(ledger.State) {}

// Options configures a LedgerService. Zero values fall back to defaults.
type Options struct {
	Committer Committer
	Policy    calculator.Policy
	Formatter *report.Formatter
}

// LedgerService implements the Connect LedgerService.
// It owns the single in-memory ledger and hands each new state to the committer.
type LedgerService struct {
	api.UnimplementedLedgerServiceHandler

	mu        sync.Mutex
	state     ledger.State
	committer Committer
	policy    calculator.Policy
	formatter *report.Formatter
}

var _ api.LedgerServiceHandler = (*LedgerService)(nil)

// NewLedgerService creates a LedgerService starting from initial.
func NewLedgerService(initial ledger.State, opts Options) (*LedgerService, error) {
	s := &LedgerService{
		state:     initial,
		committer: opts.Committer,
		policy:    opts.Policy,
		formatter: opts.Formatter,
	}
	if s.committer == nil {
		s.committer = nopCommitter{}
	}
	if s.formatter == nil {
		f, err := report.New("en", "$")
		if err != nil {
			return nil, err
		}
		s.formatter = f
	}
	return s, nil
}

// current returns the state for read-only use.
func (s *LedgerService) current() ledger.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// apply runs a reducer against the current state and commits the result.
// On error the state is left unchanged.
func (s *LedgerService) apply(fn func(ledger.State) (ledger.State, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.state)
	if err != nil {
		return err
	}
	s.state = next
	s.committer.Commit(next)
	return nil
}

// GetLedger returns all participants and expenses.
func (s *LedgerService) GetLedger(ctx context.Context, req *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	return connect.NewResponse(toAPILedger(s.current())), nil
}

// AddParticipant adds a named participant.
func (s *LedgerService) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	var added api.Participant
	err := s.apply(func(st ledger.State) (ledger.State, error) {
		next, p, err := ledger.AddParticipant(st, req.Msg.Name)
		added = *toAPIParticipant(p)
		return next, err
	})
	if err != nil {
		return nil, toConnectError("AddParticipant", err)
	}

	slog.Info("Participant added", "participant_id", added.Id, "name", added.Name)
	return connect.NewResponse(&api.AddParticipantResponse{Participant: &added}), nil
}

// UpdateParticipant renames a participant or changes their transfer info.
func (s *LedgerService) UpdateParticipant(ctx context.Context, req *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error) {
	upd := ledger.ParticipantUpdate{Name: req.Msg.Name, TransferInfo: req.Msg.TransferInfo}

	var updated api.Participant
	err := s.apply(func(st ledger.State) (ledger.State, error) {
		next, p, err := ledger.UpdateParticipant(st, req.Msg.ParticipantId, upd)
		updated = *toAPIParticipant(p)
		return next, err
	})
	if err != nil {
		return nil, toConnectError("UpdateParticipant", err)
	}

	slog.Info("Participant updated", "participant_id", updated.Id)
	return connect.NewResponse(&api.UpdateParticipantResponse{Participant: &updated}), nil
}

// RemoveParticipant deletes a participant and every expense that references them.
func (s *LedgerService) RemoveParticipant(ctx context.Context, req *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error) {
	var removed int
	err := s.apply(func(st ledger.State) (ledger.State, error) {
		next, n, err := ledger.RemoveParticipant(st, req.Msg.ParticipantId)
		removed = n
		return next, err
	})
	if err != nil {
		return nil, toConnectError("RemoveParticipant", err)
	}

	slog.Info("Participant removed",
		"participant_id", req.Msg.ParticipantId,
		"removed_expenses", removed,
	)
	return connect.NewResponse(&api.RemoveParticipantResponse{RemovedExpenses: removed}), nil
}

// AddExpense validates and records a new expense.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	in := toExpenseInput(req.Msg.Expense)

	var added *api.Expense
	err := s.apply(func(st ledger.State) (ledger.State, error) {
		next, e, err := ledger.AddExpense(st, in)
		added = toAPIExpense(e)
		return next, err
	})
	if err != nil {
		return nil, toConnectError("AddExpense", err)
	}

	slog.Info("Expense added",
		"expense_id", added.Id,
		"amount", added.Amount,
		"paid_by", added.PaidBy,
		"participants", len(added.Participants),
	)
	return connect.NewResponse(&api.AddExpenseResponse{Expense: added}), nil
}

// UpdateExpense replaces the editable fields of an expense.
func (s *LedgerService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	in := toExpenseInput(req.Msg.Expense)

	var updated *api.Expense
	err := s.apply(func(st ledger.State) (ledger.State, error) {
		next, e, err := ledger.UpdateExpense(st, req.Msg.ExpenseId, in)
		updated = toAPIExpense(e)
		return next, err
	})
	if err != nil {
		return nil, toConnectError("UpdateExpense", err)
	}

	slog.Info("Expense updated", "expense_id", updated.Id)
	return connect.NewResponse(&api.UpdateExpenseResponse{Expense: updated}), nil
}

// RemoveExpense deletes an expense.
func (s *LedgerService) RemoveExpense(ctx context.Context, req *connect.Request[api.RemoveExpenseRequest]) (*connect.Response[api.RemoveExpenseResponse], error) {
	err := s.apply(func(st ledger.State) (ledger.State, error) {
		return ledger.RemoveExpense(st, req.Msg.ExpenseId)
	})
	if err != nil {
		return nil, toConnectError("RemoveExpense", err)
	}

	slog.Info("Expense removed", "expense_id", req.Msg.ExpenseId)
	return connect.NewResponse(&api.RemoveExpenseResponse{}), nil
}

// ValidateExpense checks a candidate expense without recording it.
// Problems are returned in the response, not as an RPC error.
func (s *LedgerService) ValidateExpense(ctx context.Context, req *connect.Request[api.ValidateExpenseRequest]) (*connect.Response[api.ValidateExpenseResponse], error) {
	st := s.current()
	in := toExpenseInput(req.Msg.Expense)
	candidate := models.Expense{
		Description:  in.Description,
		Amount:       in.Amount,
		Date:         in.Date,
		PaidBy:       in.PaidBy,
		Participants: in.Participants,
	}

	problems := validation.ValidateExpense(candidate, st.Participants)
	if problems == nil {
		problems = []string{}
	}
	return connect.NewResponse(&api.ValidateExpenseResponse{
		Valid:  len(problems) == 0,
		Errors: problems,
	}), nil
}

// GetBalances computes balances, the settlement plan and statistics.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	policy, err := s.resolvePolicy(req.Msg.Policy)
	if err != nil {
		return nil, err
	}

	st := s.current()
	summary := ledger.Summarize(st, calculator.WithPolicy(policy))

	slog.Debug("Balances computed",
		"participants", len(st.Participants),
		"expenses", len(st.Expenses),
		"settlements", len(summary.Settlements),
		"policy", policy,
	)
	return connect.NewResponse(&api.GetBalancesResponse{
		Balances:         toAPIBalances(st.Participants, summary.Balances),
		Settlements:      toAPISettlements(st, summary.Settlements),
		ExpenseStats:     toAPIExpenseStats(summary.Expenses),
		ParticipantStats: toAPIParticipantStats(summary.Participants),
	}), nil
}

// GetSettlementReport renders the settlement plan as copyable text.
func (s *LedgerService) GetSettlementReport(ctx context.Context, req *connect.Request[api.GetSettlementReportRequest]) (*connect.Response[api.GetSettlementReportResponse], error) {
	policy, err := s.resolvePolicy(req.Msg.Policy)
	if err != nil {
		return nil, err
	}

	st := s.current()
	summary := ledger.Summarize(st, calculator.WithPolicy(policy))
	transfers := toTransfers(st, summary.Settlements)

	instructions := make([]string, len(transfers))
	for i, t := range transfers {
		instructions[i] = s.formatter.Instruction(t)
	}
	return connect.NewResponse(&api.GetSettlementReportResponse{
		Lines:        s.formatter.Lines(transfers),
		Instructions: instructions,
		Total:        s.formatter.Total(transfers),
	}), nil
}

// ExportLedger returns the ledger as a snapshot document.
func (s *LedgerService) ExportLedger(ctx context.Context, req *connect.Request[api.ExportLedgerRequest]) (*connect.Response[api.ExportLedgerResponse], error) {
	data, err := snapshot.Encode(s.current())
	if err != nil {
		return nil, toConnectError("ExportLedger", err)
	}
	return connect.NewResponse(&api.ExportLedgerResponse{Document: data}), nil
}

// ImportLedger replaces the ledger with a snapshot document.
// The document is checked in full first; a corrupted one leaves the ledger untouched.
func (s *LedgerService) ImportLedger(ctx context.Context, req *connect.Request[api.ImportLedgerRequest]) (*connect.Response[api.ImportLedgerResponse], error) {
	var imported ledger.State
	err := s.apply(func(ledger.State) (ledger.State, error) {
		st, err := snapshot.Decode(req.Msg.Document)
		imported = st
		return st, err
	})
	if err != nil {
		return nil, toConnectError("ImportLedger", err)
	}

	slog.Info("Ledger imported",
		"participants", len(imported.Participants),
		"expenses", len(imported.Expenses),
	)
	return connect.NewResponse(&api.ImportLedgerResponse{
		Participants: len(imported.Participants),
		Expenses:     len(imported.Expenses),
	}), nil
}

// ClearLedger removes all participants and expenses.
func (s *LedgerService) ClearLedger(ctx context.Context, req *connect.Request[api.ClearLedgerRequest]) (*connect.Response[api.ClearLedgerResponse], error) {
	err := s.apply(func(ledger.State) (ledger.State, error) {
		return ledger.Clear(), nil
	})
	if err != nil {
		return nil, toConnectError("ClearLedger", err)
	}

	slog.Info("Ledger cleared")
	return connect.NewResponse(&api.ClearLedgerResponse{}), nil
}

// resolvePolicy returns the requested policy, or the service default when name is empty.
func (s *LedgerService) resolvePolicy(name string) (calculator.Policy, error) {
	if name == "" {
		return s.policy, nil
	}
	p, err := calculator.ParsePolicy(name)
	if err != nil {
		slog.Warn("Invalid settlement policy requested", "policy", name)
		return s.policy, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return p, nil
}

// toConnectError maps reducer and codec errors to Connect codes.
func toConnectError(op string, err error) error {
	var invalid validation.Errors
	var corrupted *snapshot.CorruptedError

	code := connect.CodeInternal
	switch {
	case errors.As(err, &invalid):
		code = connect.CodeInvalidArgument
	case errors.As(err, &corrupted):
		code = connect.CodeInvalidArgument
	case errors.Is(err, ledger.ErrEmptyName):
		code = connect.CodeInvalidArgument
	case errors.Is(err, ledger.ErrDuplicateName):
		code = connect.CodeAlreadyExists
	case errors.Is(err, ledger.ErrParticipantNotFound), errors.Is(err, ledger.ErrExpenseNotFound):
		code = connect.CodeNotFound
	}

	if code == connect.CodeInternal {
		slog.Error(op+" failed", "error", err)
	}
	return connect.NewError(code, err)
}
