package engine

import (
	"fmt"
)

// ============================================================================
// TABLE BUILDER — Produces TableData from a Result
// ============================================================================
// Flat, string-typed tables for CSV output and spreadsheet export.
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// BuildResultTables converts a Result into its three display tables:
// answer counts, by grade level, by major.
func BuildResultTables(res *Result) []*TableData {
	return []*TableData{
		BuildAnswerTable(res),
		buildGroupTable(fmt.Sprintf("Answers by Grade Level: %s", res.Question), FieldGradeLevel, res.Tables.ByGradeLevel),
		buildGroupTable(fmt.Sprintf("Answers by Major: %s", res.Question), FieldMajor, res.Tables.ByMajor),
	}
}

// BuildAnswerTable renders the answer frequency table.
func BuildAnswerTable(res *Result) *TableData {
	columns := []Column{
		{Key: "answer", Label: "Answer", Type: "text", Align: "left"},
		{Key: "count", Label: "Count", Type: "number", Align: "right"},
		{Key: "percent", Label: "Percent", Type: "number", Align: "right"},
	}

	rows := make([][]string, 0, len(res.Tables.AnswerCounts))
	answered := 0
	for _, c := range res.Tables.AnswerCounts {
		rows = append(rows, []string{c.Answer, fmt.Sprintf("%d", c.Count), fmt.Sprintf("%.2f", c.Percent)})
		answered += c.Count
	}

	return &TableData{
		Title:   fmt.Sprintf("Distribution of Answers: %s", res.Question),
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("Total (%d responses, %d unanswered)", res.Summary.TotalResponses, res.Summary.UnansweredCount),
			Values: map[string]string{
				"count": fmt.Sprintf("%d", answered),
			},
		},
	}
}

func buildGroupTable(title string, f Field, counts []GroupCount) *TableData {
	columns := []Column{
		{Key: "group", Label: f.String(), Type: "text", Align: "left"},
		{Key: "answer", Label: "Answer", Type: "text", Align: "left"},
		{Key: "count", Label: "Count", Type: "number", Align: "right"},
	}

	rows := make([][]string, 0, len(counts))
	total := 0
	for _, c := range counts {
		rows = append(rows, []string{c.Group, c.Answer, fmt.Sprintf("%d", c.Count)})
		total += c.Count
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label:  "Total",
			Values: map[string]string{"count": fmt.Sprintf("%d", total)},
		},
	}
}

// Headers returns the column labels in order.
func (t *TableData) Headers() []string {
	h := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		h[i] = c.Label
	}
	return h
}

// SummaryRow lays the totals row out under Columns: the label in the first
// cell, each value under its column key. Nil when the table has no summary.
func (t *TableData) SummaryRow() []string {
	if t.Summary == nil || len(t.Columns) == 0 {
		return nil
	}
	row := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		row[i] = t.Summary.Values[c.Key]
	}
	row[0] = t.Summary.Label
	return row
}
