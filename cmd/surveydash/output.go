package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spektr-org/surveydash/engine"
)

// ============================================================================
// OUTPUT WRITER
// ============================================================================

// openOutput returns the command's stdout, or a created file when path is set.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path) //nolint:gosec // user-provided output path
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close output file", "path", path, "error", err)
			return
		}
		slog.Info("output written", "path", path)
	}, nil
}

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w io.Writer, v any, format string) error {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// ============================================================================
// CSV OUTPUT — answer counts, then the grouped tables, each with its totals
// row, blank-line separated
// ============================================================================

func writeCSV(w io.Writer, res *engine.Result) error {
	cw := csv.NewWriter(w)

	if res.State != engine.Selected {
		_ = cw.Write([]string{"Result", res.Placeholder})
		cw.Flush()
		return cw.Error()
	}

	for i, table := range engine.BuildResultTables(res) {
		if i > 0 {
			_ = cw.Write([]string{})
		}
		_ = cw.Write([]string{table.Title})
		_ = cw.Write(table.Headers())
		for _, row := range table.Rows {
			_ = cw.Write(row)
		}
		if row := table.SummaryRow(); row != nil {
			_ = cw.Write(row)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ============================================================================
// TEXT OUTPUT — summary cards
// ============================================================================

func writeText(w io.Writer, res *engine.Result) error {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	dim := color.New(color.Faint)

	if res.State != engine.Selected {
		_, err := dim.Fprintln(w, res.Placeholder)
		return err
	}

	bold.Fprintf(w, "%s\n", res.Question)
	dim.Fprintf(w, "Section: %s | Grade Level: %s | Major: %s\n\n", res.Section, res.GradeLevel, res.Major)
	for _, c := range engine.BuildCards(res) {
		fmt.Fprintf(w, "  %-20s ", c.Title)
		cyan.Fprintln(w, c.Value)
	}
	fmt.Fprintln(w)

	for _, c := range res.Tables.AnswerCounts {
		fmt.Fprintf(w, "  %-30s %6d  %6.2f%%\n", c.Answer, c.Count, c.Percent)
	}
	if len(res.Tables.AnswerCounts) > 0 {
		fmt.Fprintln(w)
	}
	_, err := fmt.Fprintln(w, engine.BuildReply(res))
	return err
}
