// Package report renders settlement plans as human-readable text.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Transfer is a settlement with display names resolved.
type Transfer struct {
	From   string
	To     string
	Amount float64
}

// Formatter formats amounts and transfers for one locale.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New creates a formatter for a BCP 47 locale (e.g. "en", "es-AR") and currency symbol.
func New(locale, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}, nil
}

// Amount formats a value rounded to cents with locale digit grouping.
func (f *Formatter) Amount(v float64) string {
	rounded := decimal.NewFromFloat(v).Round(2).InexactFloat64()
	return f.symbol + f.printer.Sprintf("%.2f", rounded)
}

// Lines renders a numbered list, one transfer per line.
func (f *Formatter) Lines(transfers []Transfer) []string {
	if len(transfers) == 0 {
		return []string{"No transfers needed"}
	}
	lines := make([]string, len(transfers))
	for i, t := range transfers {
		lines[i] = fmt.Sprintf("%d. %s → %s: %s", i+1, t.From, t.To, f.Amount(t.Amount))
	}
	return lines
}

// Instruction renders a single transfer as a sentence.
func (f *Formatter) Instruction(t Transfer) string {
	return fmt.Sprintf("%s must transfer %s to %s", t.From, f.Amount(t.Amount), t.To)
}

// Total formats the sum of all transfer amounts.
func (f *Formatter) Total(transfers []Transfer) string {
	sum := decimal.Zero
	for _, t := range transfers {
		sum = sum.Add(decimal.NewFromFloat(t.Amount))
	}
	return f.Amount(sum.InexactFloat64())
}
