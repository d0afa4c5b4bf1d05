package engine

import (
	"log/slog"
	"runtime"
)

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute() and Report()
// ============================================================================

// DefaultPlaceholder is shown while no question is selected.
const DefaultPlaceholder = "Please select a question to display charts."

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Placeholder   string
	Palette       []string
	Logger        *slog.Logger
	ReportWorkers int
}

// WithPlaceholder sets the message returned while awaiting a question.
func WithPlaceholder(msg string) Option {
	return func(c *config) {
		if msg != "" {
			c.Placeholder = msg
		}
	}
}

// WithPalette overrides the chart colour palette.
func WithPalette(colors []string) Option {
	return func(c *config) {
		if len(colors) > 0 {
			c.Palette = colors
		}
	}
}

// WithLogger routes engine debug logging to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithReportWorkers bounds how many questions Report computes at once.
func WithReportWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.ReportWorkers = n
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Placeholder:   DefaultPlaceholder,
		Palette:       DefaultPalette,
		Logger:        slog.Default(),
		ReportWorkers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
