package schema

import (
	"fmt"
	"sort"
	"strings"
)

// ============================================================================
// INSPECTION — Column profile of a raw survey table
// ============================================================================
// Runs before records are built, so a bad export can be diagnosed without
// the engine: which required columns exist, how many cells are missing,
// how many distinct values each holds, which extra columns get ignored.
// ============================================================================

// Profile describes a raw table against the column contract.
type Profile struct {
	Rows    int             `json:"rows" yaml:"rows"`
	Columns []ColumnProfile `json:"columns" yaml:"columns"`
	Ignored []string        `json:"ignored,omitempty" yaml:"ignored,omitempty"`
}

// ColumnProfile summarizes one required column.
type ColumnProfile struct {
	Field           string   `json:"field" yaml:"field"`
	Header          string   `json:"header" yaml:"header"`
	Distinct        int      `json:"distinct" yaml:"distinct"`
	Missing         int      `json:"missing" yaml:"missing"`
	Samples         []string `json:"samples" yaml:"samples"`
	CardinalityHint string   `json:"cardinalityHint" yaml:"cardinality_hint"` // "low", "medium", "high"
}

// Inspect profiles the required columns of a table. rows excludes the
// header row; empty column names fall back to DefaultColumns. Fails only
// when a required column is missing.
func Inspect(headers []string, rows [][]string, cols Columns) (*Profile, error) {
	cols = cols.WithDefaults()
	idx, err := cols.Resolve(headers)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		name   string
		header string
		index  int
	}{
		{"section", cols.Section, idx.Section},
		{"question", cols.Question, idx.Question},
		{"answer", cols.Answer, idx.Answer},
		{"grade_level", cols.GradeLevel, idx.GradeLevel},
		{"major", cols.Major, idx.Major},
	}

	p := &Profile{Rows: len(rows)}
	for _, f := range fields {
		p.Columns = append(p.Columns, analyzeColumn(f.name, f.header, f.index, rows))
	}

	required := make(map[string]bool)
	for _, name := range cols.Names() {
		required[name] = true
	}
	for _, h := range headers {
		h = cleanHeader(h)
		if !required[h] {
			p.Ignored = append(p.Ignored, h)
		}
	}
	return p, nil
}

// analyzeColumn counts missing and distinct values in one column.
func analyzeColumn(field, header string, index int, rows [][]string) ColumnProfile {
	col := ColumnProfile{Field: field, Header: header}
	uniqueSet := make(map[string]bool)

	for _, row := range rows {
		if index >= len(row) {
			col.Missing++
			continue
		}
		val := strings.TrimSpace(row[index])
		if IsMissing(val) {
			col.Missing++
			continue
		}
		uniqueSet[val] = true
	}

	col.Distinct = len(uniqueSet)
	col.Samples = collectSamples(uniqueSet, 10)

	switch {
	case col.Distinct <= 10:
		col.CardinalityHint = "low"
	case col.Distinct <= 100:
		col.CardinalityHint = "medium"
	default:
		col.CardinalityHint = "high"
	}
	return col
}

// collectSamples picks up to maxSamples values, sorted for stable output.
func collectSamples(uniqueSet map[string]bool, maxSamples int) []string {
	samples := make([]string, 0, len(uniqueSet))
	for v := range uniqueSet {
		samples = append(samples, v)
	}
	sort.Strings(samples)

	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}
	return samples
}

// String renders a short, human-readable profile.
func (p *Profile) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d rows\n", p.Rows)
	for _, c := range p.Columns {
		fmt.Fprintf(&b, "  %-12s %-24q distinct=%-5d missing=%-5d (%s)\n",
			c.Field, c.Header, c.Distinct, c.Missing, c.CardinalityHint)
	}
	if len(p.Ignored) > 0 {
		fmt.Fprintf(&b, "  ignored: %s\n", strings.Join(p.Ignored, ", "))
	}
	return b.String()
}
