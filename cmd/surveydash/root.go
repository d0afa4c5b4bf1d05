package main

import (
	"context"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spektr-org/surveydash/engine"
	"github.com/spektr-org/surveydash/helpers"
	"github.com/spektr-org/surveydash/internal/config"
	surveylog "github.com/spektr-org/surveydash/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	sourceFlag string
	configPath string
)

// Resolved per invocation in PersistentPreRunE.
var (
	cfg    *config.Config
	holder *engine.Holder
)

// rootCmd is the base command for surveydash.
var rootCmd = &cobra.Command{
	Use:   "surveydash",
	Short: "Explore survey responses by section, question, grade level and major",
	Long: `Surveydash loads a survey export (CSV or XLSX, local or over HTTP) and
answers dashboard queries over it: summary cards, answer distributions and
breakdowns by grade level and major. Run "surveydash serve" for the JSON API
or query the dataset directly from the command line.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&sourceFlag, "source", "s", "", "survey CSV/XLSX file path or URL")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./"+config.FileName+")")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves configuration (file, then .env and environment, then
// flags), configures logging and prepares the lazy dataset holder.
func setup(_ *cobra.Command, _ []string) error {
	if noColor {
		color.NoColor = true
	}

	config.LoadDotEnv()
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	config.ApplyEnv(c)
	if sourceFlag != "" {
		c.Source = sourceFlag
	}
	config.Defaults(c)
	if err := config.Validate(c); err != nil {
		return err
	}

	surveylog.Setup(verbose, quiet, c.LogLevel)
	slog.Debug("configuration resolved", "source", c.Source, "addr", c.Addr)

	cfg = c
	holder = engine.NewHolder(func(ctx context.Context) (*engine.Dataset, error) {
		return helpers.Load(ctx, c.Source, c.Columns)
	})
	return nil
}

// engineOptions maps configuration onto engine options.
func engineOptions() []engine.Option {
	return []engine.Option{
		engine.WithPlaceholder(cfg.Placeholder),
		engine.WithReportWorkers(cfg.ReportWorkers),
		engine.WithLogger(slog.Default()),
	}
}
