package snapshot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
)

func sampleState() ledger.State {
	return ledger.State{
		Participants: []models.Participant{
			{ID: "p1", Name: "Alice", TransferInfo: "alias: alice.mp"},
			{ID: "p2", Name: "Bob"},
		},
		Expenses: []models.Expense{
			{ID: "e1", Description: "Rent", Amount: 900, Date: "2024-02-01", PaidBy: "p1", Participants: []string{"p1", "p2"}},
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	data, err := Encode(sampleState())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version":1`)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, sampleState(), got)
}

func TestEncode_EmptyStateUsesEmptyLists(t *testing.T) {
	data, err := Encode(ledger.Clear())
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"participants":[],"expenses":[]}`, string(data))

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Empty(t, got.Participants)
	assert.Empty(t, got.Expenses)
}

func TestDecode_SanitizesWhitespace(t *testing.T) {
	got, err := Decode([]byte(`{
		"participants": [{"id": " p1 ", "name": "  Alice "}],
		"expenses": [{"id": "e1", "description": " Taxi ", "amount": 12.5, "date": "2024-01-01", "paidBy": "p1", "participants": ["p1"]}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "p1", got.Participants[0].ID)
	assert.Equal(t, "Alice", got.Participants[0].Name)
	assert.Equal(t, "Taxi", got.Expenses[0].Description)
}

func TestDecode_TrimsReferences(t *testing.T) {
	got, err := Decode([]byte(`{
		"participants": [{"id": " p1 ", "name": "Alice"}, {"id": "p2", "name": "Bob"}],
		"expenses": [{"id": "e1", "description": "Taxi", "amount": 12.5, "date": "2024-01-01", "paidBy": " p1 ", "participants": [" p1", "p2 "]}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "p1", got.Expenses[0].PaidBy)
	assert.Equal(t, []string{"p1", "p2"}, got.Expenses[0].Participants)
}

func TestDecode_DeduplicatesSplitSet(t *testing.T) {
	got, err := Decode([]byte(`{
		"participants": [{"id": "a", "name": "Alice"}, {"id": "b", "name": "Bob"}],
		"expenses": [{"id": "e1", "description": "Lunch", "amount": 30, "date": "2024-01-01", "paidBy": "b", "participants": ["a", "a", "b", " b"]}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Expenses[0].Participants)

	balances := calculator.ComputeBalances(got.Participants, got.Expenses)
	assert.InDelta(t, -15, balances["a"].Net, 0.001)
	assert.InDelta(t, 15, balances["b"].Net, 0.001)
}

func TestDecode_Corrupted(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantDetails []string
	}{
		{
			name:        "not JSON",
			data:        `{"participants": [`,
			wantDetails: nil, // single "invalid JSON" detail, text comes from encoding/json
		},
		{
			name:        "wrong field type",
			data:        `{"participants": [], "expenses": [{"amount": "ten"}]}`,
			wantDetails: nil,
		},
		{
			name:        "missing lists",
			data:        `{}`,
			wantDetails: []string{"participant list is missing", "expense list is missing"},
		},
		{
			name: "bad participant",
			data: `{"participants": [{"id": "", "name": " "}], "expenses": []}`,
			wantDetails: []string{
				"participant 1 has an invalid ID",
				"participant 1 has an invalid name",
			},
		},
		{
			name: "duplicate participant",
			data: `{"participants": [{"id": "p1", "name": "A"}, {"id": "p1", "name": "B"}], "expenses": []}`,
			wantDetails: []string{
				"participant 2 has a duplicate ID",
			},
		},
		{
			name: "bad expense",
			data: `{"participants": [{"id": "p1", "name": "A"}], "expenses": [
				{"id": "e1", "description": "", "amount": 0, "date": "31/12/2024", "paidBy": "ghost", "participants": []}
			]}`,
			wantDetails: []string{
				"expense 1 has an invalid description",
				"expense 1 has an invalid amount",
				"expense 1 has an invalid payer",
				"expense 1 has invalid participants",
				"expense 1 has an invalid date",
			},
		},
		{
			name: "dangling split member",
			data: `{"participants": [{"id": "p1", "name": "A"}], "expenses": [
				{"id": "e1", "description": "x", "amount": 5, "date": "2024-12-31", "paidBy": "p1", "participants": ["p1", "p9"]}
			]}`,
			wantDetails: []string{
				"expense 1 references an unknown participant",
			},
		},
		{
			name:        "future version",
			data:        `{"version": 99, "participants": [], "expenses": []}`,
			wantDetails: []string{"unsupported version 99"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			require.Error(t, err)

			var corrupted *CorruptedError
			require.True(t, errors.As(err, &corrupted), "expected *CorruptedError, got %T", err)
			if tt.wantDetails == nil {
				assert.Len(t, corrupted.Details, 1)
				return
			}
			assert.Equal(t, tt.wantDetails, corrupted.Details)
		})
	}
}
