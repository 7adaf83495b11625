// Package config loads process settings from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/report"
)

// Config holds settings shared by the server and the CLI.
type Config struct {
	Port       int    `env:"PORT" envDefault:"8080"`
	DBPath     string `env:"DB_PATH" envDefault:"./data/ledger.db"`
	StaticPath string `env:"STATIC_PATH" envDefault:"../frontend/static"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	// StorageKey is the key the ledger is saved under in the local store.
	StorageKey   string        `env:"STORAGE_KEY" envDefault:"expense-calculator-data"`
	CommitWindow time.Duration `env:"COMMIT_WINDOW" envDefault:"500ms"`

	SettlementPolicy string `env:"SETTLEMENT_POLICY" envDefault:"sorted"`
	Locale           string `env:"LOCALE" envDefault:"en"`
	CurrencySymbol   string `env:"CURRENCY_SYMBOL" envDefault:"$"`
}

// Load parses the environment and checks the values that can be wrong.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.CommitWindow < 0 {
		return fmt.Errorf("COMMIT_WINDOW must not be negative: %s", c.CommitWindow)
	}
	if c.StorageKey == "" {
		return fmt.Errorf("STORAGE_KEY is required")
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.Formatter(); err != nil {
		return err
	}
	return nil
}

// Policy returns the configured settlement policy.
func (c Config) Policy() (calculator.Policy, error) {
	return calculator.ParsePolicy(c.SettlementPolicy)
}

// Formatter returns a report formatter for the configured locale and currency symbol.
func (c Config) Formatter() (*report.Formatter, error) {
	return report.New(c.Locale, c.CurrencySymbol)
}
