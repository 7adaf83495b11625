package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "splitledger.v1.LedgerService"

// Procedure paths. Each is the service name followed by the method name.
const (
	LedgerServiceGetLedgerProcedure           = "/" + LedgerServiceName + "/GetLedger"
	LedgerServiceAddParticipantProcedure      = "/" + LedgerServiceName + "/AddParticipant"
	LedgerServiceUpdateParticipantProcedure   = "/" + LedgerServiceName + "/UpdateParticipant"
	LedgerServiceRemoveParticipantProcedure   = "/" + LedgerServiceName + "/RemoveParticipant"
	LedgerServiceAddExpenseProcedure          = "/" + LedgerServiceName + "/AddExpense"
	LedgerServiceUpdateExpenseProcedure       = "/" + LedgerServiceName + "/UpdateExpense"
	LedgerServiceRemoveExpenseProcedure       = "/" + LedgerServiceName + "/RemoveExpense"
	LedgerServiceValidateExpenseProcedure     = "/" + LedgerServiceName + "/ValidateExpense"
	LedgerServiceGetBalancesProcedure         = "/" + LedgerServiceName + "/GetBalances"
	LedgerServiceGetSettlementReportProcedure = "/" + LedgerServiceName + "/GetSettlementReport"
	LedgerServiceExportLedgerProcedure        = "/" + LedgerServiceName + "/ExportLedger"
	LedgerServiceImportLedgerProcedure        = "/" + LedgerServiceName + "/ImportLedger"
	LedgerServiceClearLedgerProcedure         = "/" + LedgerServiceName + "/ClearLedger"
)

// LedgerServiceHandler is implemented by the server side of LedgerService.
type LedgerServiceHandler interface {
	GetLedger(context.Context, *connect.Request[GetLedgerRequest]) (*connect.Response[GetLedgerResponse], error)
	AddParticipant(context.Context, *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error)
	UpdateParticipant(context.Context, *connect.Request[UpdateParticipantRequest]) (*connect.Response[UpdateParticipantResponse], error)
	RemoveParticipant(context.Context, *connect.Request[RemoveParticipantRequest]) (*connect.Response[RemoveParticipantResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error)
	RemoveExpense(context.Context, *connect.Request[RemoveExpenseRequest]) (*connect.Response[RemoveExpenseResponse], error)
	ValidateExpense(context.Context, *connect.Request[ValidateExpenseRequest]) (*connect.Response[ValidateExpenseResponse], error)
	GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error)
	GetSettlementReport(context.Context, *connect.Request[GetSettlementReportRequest]) (*connect.Response[GetSettlementReportResponse], error)
	ExportLedger(context.Context, *connect.Request[ExportLedgerRequest]) (*connect.Response[ExportLedgerResponse], error)
	ImportLedger(context.Context, *connect.Request[ImportLedgerRequest]) (*connect.Response[ImportLedgerResponse], error)
	ClearLedger(context.Context, *connect.Request[ClearLedgerRequest]) (*connect.Response[ClearLedgerResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler for every LedgerService procedure.
// It returns the path prefix to mount the handler on. Requests and responses are JSON.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(LedgerServiceGetLedgerProcedure, connect.NewUnaryHandler(LedgerServiceGetLedgerProcedure, svc.GetLedger, opts...))
	mux.Handle(LedgerServiceAddParticipantProcedure, connect.NewUnaryHandler(LedgerServiceAddParticipantProcedure, svc.AddParticipant, opts...))
	mux.Handle(LedgerServiceUpdateParticipantProcedure, connect.NewUnaryHandler(LedgerServiceUpdateParticipantProcedure, svc.UpdateParticipant, opts...))
	mux.Handle(LedgerServiceRemoveParticipantProcedure, connect.NewUnaryHandler(LedgerServiceRemoveParticipantProcedure, svc.RemoveParticipant, opts...))
	mux.Handle(LedgerServiceAddExpenseProcedure, connect.NewUnaryHandler(LedgerServiceAddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(LedgerServiceUpdateExpenseProcedure, connect.NewUnaryHandler(LedgerServiceUpdateExpenseProcedure, svc.UpdateExpense, opts...))
	mux.Handle(LedgerServiceRemoveExpenseProcedure, connect.NewUnaryHandler(LedgerServiceRemoveExpenseProcedure, svc.RemoveExpense, opts...))
	mux.Handle(LedgerServiceValidateExpenseProcedure, connect.NewUnaryHandler(LedgerServiceValidateExpenseProcedure, svc.ValidateExpense, opts...))
	mux.Handle(LedgerServiceGetBalancesProcedure, connect.NewUnaryHandler(LedgerServiceGetBalancesProcedure, svc.GetBalances, opts...))
	mux.Handle(LedgerServiceGetSettlementReportProcedure, connect.NewUnaryHandler(LedgerServiceGetSettlementReportProcedure, svc.GetSettlementReport, opts...))
	mux.Handle(LedgerServiceExportLedgerProcedure, connect.NewUnaryHandler(LedgerServiceExportLedgerProcedure, svc.ExportLedger, opts...))
	mux.Handle(LedgerServiceImportLedgerProcedure, connect.NewUnaryHandler(LedgerServiceImportLedgerProcedure, svc.ImportLedger, opts...))
	mux.Handle(LedgerServiceClearLedgerProcedure, connect.NewUnaryHandler(LedgerServiceClearLedgerProcedure, svc.ClearLedger, opts...))
	return "/" + LedgerServiceName + "/", mux
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) GetLedger(context.Context, *connect.Request[GetLedgerRequest]) (*connect.Response[GetLedgerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.GetLedger is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddParticipant(context.Context, *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.AddParticipant is not implemented"))
}

func (UnimplementedLedgerServiceHandler) UpdateParticipant(context.Context, *connect.Request[UpdateParticipantRequest]) (*connect.Response[UpdateParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.UpdateParticipant is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RemoveParticipant(context.Context, *connect.Request[RemoveParticipantRequest]) (*connect.Response[RemoveParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.RemoveParticipant is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.AddExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) UpdateExpense(context.Context, *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.UpdateExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RemoveExpense(context.Context, *connect.Request[RemoveExpenseRequest]) (*connect.Response[RemoveExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.RemoveExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ValidateExpense(context.Context, *connect.Request[ValidateExpenseRequest]) (*connect.Response[ValidateExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.ValidateExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.GetBalances is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetSettlementReport(context.Context, *connect.Request[GetSettlementReportRequest]) (*connect.Response[GetSettlementReportResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.GetSettlementReport is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ExportLedger(context.Context, *connect.Request[ExportLedgerRequest]) (*connect.Response[ExportLedgerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.ExportLedger is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ImportLedger(context.Context, *connect.Request[ImportLedgerRequest]) (*connect.Response[ImportLedgerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.ImportLedger is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ClearLedger(context.Context, *connect.Request[ClearLedgerRequest]) (*connect.Response[ClearLedgerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.ClearLedger is not implemented"))
}

// LedgerServiceClient is a client for LedgerService.
type LedgerServiceClient interface {
	GetLedger(context.Context, *connect.Request[GetLedgerRequest]) (*connect.Response[GetLedgerResponse], error)
	AddParticipant(context.Context, *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error)
	UpdateParticipant(context.Context, *connect.Request[UpdateParticipantRequest]) (*connect.Response[UpdateParticipantResponse], error)
	RemoveParticipant(context.Context, *connect.Request[RemoveParticipantRequest]) (*connect.Response[RemoveParticipantResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error)
	RemoveExpense(context.Context, *connect.Request[RemoveExpenseRequest]) (*connect.Response[RemoveExpenseResponse], error)
	ValidateExpense(context.Context, *connect.Request[ValidateExpenseRequest]) (*connect.Response[ValidateExpenseResponse], error)
	GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error)
	GetSettlementReport(context.Context, *connect.Request[GetSettlementReportRequest]) (*connect.Response[GetSettlementReportResponse], error)
	ExportLedger(context.Context, *connect.Request[ExportLedgerRequest]) (*connect.Response[ExportLedgerResponse], error)
	ImportLedger(context.Context, *connect.Request[ImportLedgerRequest]) (*connect.Response[ImportLedgerResponse], error)
	ClearLedger(context.Context, *connect.Request[ClearLedgerRequest]) (*connect.Response[ClearLedgerResponse], error)
}

// NewLedgerServiceClient constructs a client for the LedgerService mounted at baseURL
// (for example, http://localhost:8080). Calls use the Connect protocol with JSON bodies.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &ledgerServiceClient{
		getLedger:           connect.NewClient[GetLedgerRequest, GetLedgerResponse](httpClient, baseURL+LedgerServiceGetLedgerProcedure, opts...),
		addParticipant:      connect.NewClient[AddParticipantRequest, AddParticipantResponse](httpClient, baseURL+LedgerServiceAddParticipantProcedure, opts...),
		updateParticipant:   connect.NewClient[UpdateParticipantRequest, UpdateParticipantResponse](httpClient, baseURL+LedgerServiceUpdateParticipantProcedure, opts...),
		removeParticipant:   connect.NewClient[RemoveParticipantRequest, RemoveParticipantResponse](httpClient, baseURL+LedgerServiceRemoveParticipantProcedure, opts...),
		addExpense:          connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+LedgerServiceAddExpenseProcedure, opts...),
		updateExpense:       connect.NewClient[UpdateExpenseRequest, UpdateExpenseResponse](httpClient, baseURL+LedgerServiceUpdateExpenseProcedure, opts...),
		removeExpense:       connect.NewClient[RemoveExpenseRequest, RemoveExpenseResponse](httpClient, baseURL+LedgerServiceRemoveExpenseProcedure, opts...),
		validateExpense:     connect.NewClient[ValidateExpenseRequest, ValidateExpenseResponse](httpClient, baseURL+LedgerServiceValidateExpenseProcedure, opts...),
		getBalances:         connect.NewClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL+LedgerServiceGetBalancesProcedure, opts...),
		getSettlementReport: connect.NewClient[GetSettlementReportRequest, GetSettlementReportResponse](httpClient, baseURL+LedgerServiceGetSettlementReportProcedure, opts...),
		exportLedger:        connect.NewClient[ExportLedgerRequest, ExportLedgerResponse](httpClient, baseURL+LedgerServiceExportLedgerProcedure, opts...),
		importLedger:        connect.NewClient[ImportLedgerRequest, ImportLedgerResponse](httpClient, baseURL+LedgerServiceImportLedgerProcedure, opts...),
		clearLedger:         connect.NewClient[ClearLedgerRequest, ClearLedgerResponse](httpClient, baseURL+LedgerServiceClearLedgerProcedure, opts...),
	}
}

type ledgerServiceClient struct {
	getLedger           *connect.Client[GetLedgerRequest, GetLedgerResponse]
	addParticipant      *connect.Client[AddParticipantRequest, AddParticipantResponse]
	updateParticipant   *connect.Client[UpdateParticipantRequest, UpdateParticipantResponse]
	removeParticipant   *connect.Client[RemoveParticipantRequest, RemoveParticipantResponse]
	addExpense          *connect.Client[AddExpenseRequest, AddExpenseResponse]
	updateExpense       *connect.Client[UpdateExpenseRequest, UpdateExpenseResponse]
	removeExpense       *connect.Client[RemoveExpenseRequest, RemoveExpenseResponse]
	validateExpense     *connect.Client[ValidateExpenseRequest, ValidateExpenseResponse]
	getBalances         *connect.Client[GetBalancesRequest, GetBalancesResponse]
	getSettlementReport *connect.Client[GetSettlementReportRequest, GetSettlementReportResponse]
	exportLedger        *connect.Client[ExportLedgerRequest, ExportLedgerResponse]
	importLedger        *connect.Client[ImportLedgerRequest, ImportLedgerResponse]
	clearLedger         *connect.Client[ClearLedgerRequest, ClearLedgerResponse]
}

func (c *ledgerServiceClient) GetLedger(ctx context.Context, req *connect.Request[GetLedgerRequest]) (*connect.Response[GetLedgerResponse], error) {
	return c.getLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddParticipant(ctx context.Context, req *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error) {
	return c.addParticipant.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateParticipant(ctx context.Context, req *connect.Request[UpdateParticipantRequest]) (*connect.Response[UpdateParticipantResponse], error) {
	return c.updateParticipant.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RemoveParticipant(ctx context.Context, req *connect.Request[RemoveParticipantRequest]) (*connect.Response[RemoveParticipantResponse], error) {
	return c.removeParticipant.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RemoveExpense(ctx context.Context, req *connect.Request[RemoveExpenseRequest]) (*connect.Response[RemoveExpenseResponse], error) {
	return c.removeExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ValidateExpense(ctx context.Context, req *connect.Request[ValidateExpenseRequest]) (*connect.Response[ValidateExpenseResponse], error) {
	return c.validateExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetSettlementReport(ctx context.Context, req *connect.Request[GetSettlementReportRequest]) (*connect.Response[GetSettlementReportResponse], error) {
	return c.getSettlementReport.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ExportLedger(ctx context.Context, req *connect.Request[ExportLedgerRequest]) (*connect.Response[ExportLedgerResponse], error) {
	return c.exportLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ImportLedger(ctx context.Context, req *connect.Request[ImportLedgerRequest]) (*connect.Response[ImportLedgerResponse], error) {
	return c.importLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ClearLedger(ctx context.Context, req *connect.Request[ClearLedgerRequest]) (*connect.Response[ClearLedgerResponse], error) {
	return c.clearLedger.CallUnary(ctx, req)
}

