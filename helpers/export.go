package helpers

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/spektr-org/surveydash/engine"
)

// WriteReportXLSX writes a section report as a workbook with four sheets:
// Summary, Answers, By Grade Level, By Major.
func WriteReportXLSX(w io.Writer, report *engine.SectionReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	for _, name := range []string{"Answers", "By Grade Level", "By Major"} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
	}

	summary := [][]interface{}{{"Question", "Total Responses", "Most Common Answer", "Unique Answers", "Unanswered"}}
	answers := [][]interface{}{{"Question", "Answer", "Count", "Percent"}}
	grades := [][]interface{}{{"Question", "Grade Level", "Answer", "Count"}}
	majors := [][]interface{}{{"Question", "Major", "Answer", "Count"}}

	for _, res := range report.Questions {
		s := res.Summary
		summary = append(summary, []interface{}{res.Question, s.TotalResponses, s.MostCommonAnswer, s.UniqueAnswerCount, s.UnansweredCount})
		for _, c := range res.Tables.AnswerCounts {
			answers = append(answers, []interface{}{res.Question, c.Answer, c.Count, c.Percent})
		}
		for _, g := range res.Tables.ByGradeLevel {
			grades = append(grades, []interface{}{res.Question, g.Group, g.Answer, g.Count})
		}
		for _, g := range res.Tables.ByMajor {
			majors = append(majors, []interface{}{res.Question, g.Group, g.Answer, g.Count})
		}
	}

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{"Summary", summary},
		{"Answers", answers},
		{"By Grade Level", grades},
		{"By Major", majors},
	}
	for _, sh := range sheets {
		if err := writeRows(f, sh.name, sh.rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
