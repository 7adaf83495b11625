package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/pkg/api"
)

// stubLedger answers GetLedger and fails ClearLedger; everything else is unimplemented.
type stubLedger struct {
	api.UnimplementedLedgerServiceHandler
}

func (stubLedger) GetLedger(context.Context, *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	return connect.NewResponse(&api.GetLedgerResponse{}), nil
}

func (stubLedger) ClearLedger(context.Context, *connect.Request[api.ClearLedgerRequest]) (*connect.Response[api.ClearLedgerResponse], error) {
	return nil, connect.NewError(connect.CodeNotFound, errors.New("nothing to clear"))
}

func TestInterceptors(t *testing.T) {
	metrics := NewRPCMetrics(prometheus.NewRegistry())
	path, handler := api.NewLedgerServiceHandler(stubLedger{},
		connect.WithInterceptors(LoggingInterceptor(), MetricsInterceptor(metrics)),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	client := api.NewLedgerServiceClient(server.Client(), server.URL)
	ctx := context.Background()

	_, err := client.GetLedger(ctx, connect.NewRequest(&api.GetLedgerRequest{}))
	require.NoError(t, err)
	_, err = client.ClearLedger(ctx, connect.NewRequest(&api.ClearLedgerRequest{}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(api.LedgerServiceGetLedgerProcedure, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(api.LedgerServiceClearLedgerProcedure, "not_found")))
}

func TestCORS(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called, "preflight should not reach the handler")

	rec = httptest.NewRecorder()
	HTTPLogging(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	assert.True(t, called)
}

func TestIsClientError(t *testing.T) {
	assert.True(t, isClientError(connect.CodeInvalidArgument))
	assert.True(t, isClientError(connect.CodeNotFound))
	assert.False(t, isClientError(connect.CodeInternal))
}
