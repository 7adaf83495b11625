// Command settle prints balances and a settlement plan for an exported ledger file.
//
// Usage:
//
//	settle [-policy sorted|stable] [-locale en] [-currency $] ledger.json
//
// Flags default to the SETTLEMENT_POLICY, LOCALE, CURRENCY_SYMBOL and LOG_LEVEL
// environment variables. A file name of "-" reads from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/config"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/report"
	"github.com/mmynk/splitledger/internal/snapshot"
	"github.com/mmynk/splitledger/pkg/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("settle failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("settle", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.StringVar(&cfg.SettlementPolicy, "policy", cfg.SettlementPolicy, "settlement policy: sorted or stable")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for amounts (BCP 47)")
	fs.StringVar(&cfg.CurrencySymbol, "currency", cfg.CurrencySymbol, "currency symbol")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one ledger file, got %d arguments", fs.NArg())
	}
	logging.Setup(cfg.LogLevel)

	policy, err := cfg.Policy()
	if err != nil {
		return err
	}
	formatter, err := cfg.Formatter()
	if err != nil {
		return err
	}

	data, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	state, err := snapshot.Decode(data)
	if err != nil {
		return err
	}
	slog.Debug("Ledger read",
		"participants", len(state.Participants),
		"expenses", len(state.Expenses),
		"policy", policy,
	)

	return printSummary(stdout, state, ledger.Summarize(state, calculator.WithPolicy(policy)), formatter)
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}
	return data, nil
}

func printSummary(w io.Writer, state ledger.State, summary ledger.Summary, f *report.Formatter) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Participant\tPaid\tOwed\tNet\t")
	for _, p := range state.Participants {
		b := summary.Balances[p.ID]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", p.Name, f.Amount(b.Paid), f.Amount(b.Owed), f.Amount(b.Net))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	transfers := make([]report.Transfer, len(summary.Settlements))
	for i, s := range summary.Settlements {
		from, _ := state.Participant(s.From)
		to, _ := state.Participant(s.To)
		transfers[i] = report.Transfer{From: from.Name, To: to.Name, Amount: s.Amount}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settlements:")
	for _, line := range f.Lines(transfers) {
		fmt.Fprintln(w, line)
	}
	if len(transfers) > 0 {
		fmt.Fprintf(w, "Total: %s\n", f.Total(transfers))
	}
	return nil
}
