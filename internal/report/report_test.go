package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLocale(t *testing.T) {
	_, err := New("not a locale!", "$")
	assert.Error(t, err)
}

func TestFormatter(t *testing.T) {
	f, err := New("en", "$")
	require.NoError(t, err)

	transfers := []Transfer{
		{From: "Bob", To: "Alice", Amount: 10},
		{From: "Charlie", To: "Alice", Amount: 3.3333333},
	}

	t.Run("Amount rounds to cents", func(t *testing.T) {
		assert.Equal(t, "$10.00", f.Amount(10))
		assert.Equal(t, "$3.33", f.Amount(3.3333333))
		assert.Equal(t, "$0.50", f.Amount(0.499))
	})

	t.Run("Lines", func(t *testing.T) {
		assert.Equal(t, []string{
			"1. Bob → Alice: $10.00",
			"2. Charlie → Alice: $3.33",
		}, f.Lines(transfers))
	})

	t.Run("Lines for an empty plan", func(t *testing.T) {
		assert.Equal(t, []string{"No transfers needed"}, f.Lines(nil))
	})

	t.Run("Instruction", func(t *testing.T) {
		assert.Equal(t, "Bob must transfer $10.00 to Alice", f.Instruction(transfers[0]))
	})

	t.Run("Total", func(t *testing.T) {
		assert.Equal(t, "$13.33", f.Total(transfers))
		assert.Equal(t, "$0.00", f.Total(nil))
	})
}
