// Package config handles surveydash.yaml configuration files and the
// environment overrides layered on top of them.
package config

import (
	"github.com/spektr-org/surveydash/helpers"
	"github.com/spektr-org/surveydash/schema"
)

// FileName is the config file looked up in the working directory.
const FileName = "surveydash.yaml"

// Config represents the contents of a surveydash.yaml file.
type Config struct {
	Source         string         `yaml:"source,omitempty"`
	Addr           string         `yaml:"addr,omitempty"`
	LogLevel       string         `yaml:"log_level,omitempty"`
	AllowedOrigins []string       `yaml:"allowed_origins,omitempty"`
	Columns        schema.Columns `yaml:"columns,omitempty"`
	Placeholder    string         `yaml:"placeholder,omitempty"`
	ReportWorkers  int            `yaml:"report_workers,omitempty"`
}

// Default values applied by Defaults.
const (
	DefaultAddr     = ":8050"
	DefaultLogLevel = "info"
)

// Defaults fills every unset field.
func Defaults(cfg *Config) {
	if cfg.Source == "" {
		cfg.Source = helpers.DefaultSource
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	cfg.Columns = cfg.Columns.WithDefaults()
}
