package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spektr-org/surveydash/engine"
	"github.com/spektr-org/surveydash/helpers"
)

// Report flag values.
var (
	reportSection string
	reportGrade   string
	reportMajor   string
	reportFormat  string
	reportOut     string
)

// reportCmd runs every question of a section and exports the results.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize every question of a section",
	Long: `Run the dashboard pipeline for every question of a section under the
same grade level and major filters. Writes JSON to stdout, or a workbook
with Summary, Answers, By Grade Level and By Major sheets when --out ends
in .xlsx.`,
	Example: `  surveydash report --section "Study Habits" --out study-habits.xlsx`,
	Args:    cobra.NoArgs,
	RunE:    runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportSection, "section", "", "survey section (required)")
	reportCmd.Flags().StringVar(&reportGrade, "grade", engine.All, "grade level filter")
	reportCmd.Flags().StringVar(&reportMajor, "major", engine.All, "major filter")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "pretty", "JSON output format: json, pretty")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "output file (.xlsx writes a workbook)")
	_ = reportCmd.MarkFlagRequired("section")
}

func runReport(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(reportFormat, "json", "pretty"); err != nil {
		return err
	}
	if err := checkSection(reportSection); err != nil {
		return err
	}

	ds, err := holder.Dataset(cmd.Context())
	if err != nil {
		return err
	}
	report, err := engine.Report(cmd.Context(), ds, reportSection, reportGrade, reportMajor, engineOptions()...)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(cmd, reportOut)
	if err != nil {
		return err
	}
	defer closeOut()

	if strings.EqualFold(filepath.Ext(reportOut), ".xlsx") {
		return helpers.WriteReportXLSX(w, report)
	}
	return writeJSON(w, report, reportFormat)
}
