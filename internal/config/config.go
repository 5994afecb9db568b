// Package config loads runtime options for the idioms CLI from the
// environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/hasbyte1/go-collection-idioms/idioms"
)

// Config holds the options shared by every idioms subcommand. Command-line
// flags override these values.
type Config struct {
	Format  string   `env:"IDIOMS_FORMAT" envDefault:"text"`
	Only    []string `env:"IDIOMS_ONLY" envSeparator:","`
	Verbose bool     `env:"IDIOMS_VERBOSE" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	cfg.Only = cleanNames(cfg.Only)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports an error wrapping [idioms.ErrUnknownFormat] when Format is
// not a known output format.
func (c Config) Validate() error {
	if _, err := idioms.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// OutputFormat returns the parsed output format.
func (c Config) OutputFormat() idioms.Format {
	f, err := idioms.ParseFormat(c.Format)
	if err != nil {
		return idioms.FormatText
	}
	return f
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
