// Package config loads the CLI configuration. The engine packages take
// their parameters through constructors; this file format exists only for
// the tooling around them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/optrisk/pkg/logger"
	"github.com/rustyeddy/optrisk/risk"
)

// Config is the complete tool configuration.
type Config struct {
	Risk    RiskConfig    `json:"risk" yaml:"risk"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Logging logger.Config `json:"logging" yaml:"logging"`
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

// RiskConfig mirrors risk.Policy; zero fields take the policy defaults.
type RiskConfig struct {
	PortfolioRiskCap float64 `json:"portfolio_risk_cap" yaml:"portfolio_risk_cap"`
	PerPositionRisk  float64 `json:"per_position_risk" yaml:"per_position_risk"`
	MaxPositions     int     `json:"max_positions" yaml:"max_positions"`
	MaxCorrelation   float64 `json:"max_correlation" yaml:"max_correlation"`
	MaxBetaExposure  float64 `json:"max_beta_exposure" yaml:"max_beta_exposure"`
	MaxDrawdown      float64 `json:"max_drawdown" yaml:"max_drawdown"`
	MinEquity        float64 `json:"min_equity" yaml:"min_equity"`
}

// JournalConfig selects where decisions are recorded.
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "sqlite", "csv" or ""
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	DecisionsFile string `json:"decisions_file,omitempty" yaml:"decisions_file,omitempty"`
	EquityFile    string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Addr    string `json:"addr,omitempty" yaml:"addr,omitempty"`
}

// Default returns the configuration matching the engine defaults.
func Default() *Config {
	p := risk.DefaultPolicy()
	return &Config{
		Risk: RiskConfig{
			PortfolioRiskCap: p.PortfolioRiskCap,
			PerPositionRisk:  p.PerPositionRisk,
			MaxPositions:     p.MaxPositions,
			MaxCorrelation:   p.MaxCorrelation,
			MaxBetaExposure:  p.MaxBetaExposure,
			MaxDrawdown:      p.MaxDrawdown,
			MinEquity:        p.MinEquity,
		},
		Logging: logger.DefaultConfig(),
	}
}

// Policy converts the risk section into a risk.Policy, filling unset fields
// from the defaults.
func (c *Config) Policy() risk.Policy {
	p := risk.DefaultPolicy()
	r := c.Risk
	if r.PortfolioRiskCap > 0 {
		p.PortfolioRiskCap = r.PortfolioRiskCap
	}
	if r.PerPositionRisk > 0 {
		p.PerPositionRisk = r.PerPositionRisk
	}
	if r.MaxPositions > 0 {
		p.MaxPositions = r.MaxPositions
	}
	if r.MaxCorrelation > 0 {
		p.MaxCorrelation = r.MaxCorrelation
	}
	if r.MaxBetaExposure > 0 {
		p.MaxBetaExposure = r.MaxBetaExposure
	}
	if r.MaxDrawdown > 0 {
		p.MaxDrawdown = r.MaxDrawdown
	}
	if r.MinEquity > 0 {
		p.MinEquity = r.MinEquity
	}
	return p
}

// LoadFromFile loads configuration from a file (YAML or JSON based on
// content; YAML is tried first).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine would misbehave
// on.
func (c *Config) Validate() error {
	r := c.Risk
	if r.PortfolioRiskCap < 0 || r.PortfolioRiskCap > 1 {
		return fmt.Errorf("risk.portfolio_risk_cap must be in [0, 1]")
	}
	if r.PerPositionRisk < 0 || r.PerPositionRisk > 1 {
		return fmt.Errorf("risk.per_position_risk must be in [0, 1]")
	}
	if r.MaxPositions < 0 {
		return fmt.Errorf("risk.max_positions must not be negative")
	}
	if r.MaxCorrelation < 0 || r.MaxCorrelation > 1 {
		return fmt.Errorf("risk.max_correlation must be in [0, 1]")
	}
	if r.MaxDrawdown < 0 || r.MaxDrawdown > 1 {
		return fmt.Errorf("risk.max_drawdown must be in [0, 1]")
	}
	if r.MinEquity < 0 {
		return fmt.Errorf("risk.min_equity must not be negative")
	}

	switch strings.ToLower(c.Journal.Type) {
	case "", "none":
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path is required for sqlite journal")
		}
	case "csv":
		if c.Journal.DecisionsFile == "" || c.Journal.EquityFile == "" {
			return fmt.Errorf("journal.decisions_file and journal.equity_file are required for csv journal")
		}
	default:
		return fmt.Errorf("unknown journal.type %q", c.Journal.Type)
	}

	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("metrics.addr is required when metrics are enabled")
	}
	return nil
}
