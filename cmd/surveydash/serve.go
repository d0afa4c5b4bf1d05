package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spektr-org/surveydash/internal/server"
)

var serveAddr string

// serveCmd loads the dataset and serves the JSON API until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard JSON API",
	Long: `Load the survey dataset once and serve the dashboard API:

  GET /healthz
  GET /api/options
  GET /api/sections/{section}/questions
  GET /api/dashboard?section=&question=|question_index=&grade=&major=
  GET /api/report?section=&grade=&major=[&format=xlsx]`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := holder.Dataset(ctx)
	if err != nil {
		return err
	}

	addr := cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := server.New(ds, server.Config{
		Addr:           addr,
		AllowedOrigins: cfg.AllowedOrigins,
		EngineOptions:  engineOptions(),
	})
	return srv.Run(ctx)
}
