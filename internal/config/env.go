package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSource         = "SURVEYDASH_SOURCE"
	EnvAddr           = "SURVEYDASH_ADDR"
	EnvLogLevel       = "SURVEYDASH_LOG_LEVEL"
	EnvAllowedOrigins = "SURVEYDASH_ALLOWED_ORIGINS"
	EnvReportWorkers  = "SURVEYDASH_REPORT_WORKERS"
	EnvPort           = "PORT"
)

// LoadDotEnv loads a .env file into the process environment if one exists.
// Variables already set are not overwritten.
func LoadDotEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
}

// ApplyEnv overlays environment variables onto cfg. PORT is honoured when
// SURVEYDASH_ADDR is unset.
func ApplyEnv(cfg *Config) {
	applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvSource); ok && v != "" {
		cfg.Source = v
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	} else if v, ok := lookup(EnvPort); ok && v != "" {
		cfg.Addr = ":" + v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvAllowedOrigins); ok && v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v, ok := lookup(EnvReportWorkers); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ReportWorkers = n
		} else {
			slog.Warn("ignoring invalid report workers", "env", EnvReportWorkers, "value", v)
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
