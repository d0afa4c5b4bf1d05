package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Validate checks all fields in the config and returns all errors at once.
// Call it after Defaults.
func Validate(cfg *Config) error {
	var errs []string

	if strings.TrimSpace(cfg.Source) == "" {
		errs = append(errs, "source: must not be empty")
	}

	if !strings.Contains(cfg.Addr, ":") {
		errs = append(errs, fmt.Sprintf("addr: must be host:port or :port, got %q", cfg.Addr))
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, fmt.Sprintf("log_level: invalid value %q (must be debug, info, warn, or error)", cfg.LogLevel))
	}

	if cfg.ReportWorkers < 0 {
		errs = append(errs, fmt.Sprintf("report_workers: must be non-negative, got %d", cfg.ReportWorkers))
	}

	for i, o := range cfg.AllowedOrigins {
		if strings.TrimSpace(o) == "" {
			errs = append(errs, fmt.Sprintf("allowed_origins[%d]: must not be empty", i))
		}
	}

	seen := make(map[string]string)
	fields := []struct{ key, name string }{
		{"section", cfg.Columns.Section},
		{"question", cfg.Columns.Question},
		{"answer", cfg.Columns.Answer},
		{"grade_level", cfg.Columns.GradeLevel},
		{"major", cfg.Columns.Major},
	}
	for _, f := range fields {
		if f.name == "" {
			errs = append(errs, fmt.Sprintf("columns.%s: must not be empty", f.key))
			continue
		}
		if other, dup := seen[f.name]; dup {
			errs = append(errs, fmt.Sprintf("columns.%s: header %q already used by columns.%s", f.key, f.name, other))
			continue
		}
		seen[f.name] = f.key
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
