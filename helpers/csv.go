package helpers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spektr-org/surveydash/engine"
	"github.com/spektr-org/surveydash/schema"
)

// ============================================================================
// CSV HELPER — Parses survey CSV into []engine.Response
// ============================================================================
// Callers fetch the bytes from wherever they live (file, URL); this file
// only turns a header + rows table into Responses using the column contract.
// ============================================================================

// ErrEmptySource is returned when a source has no header row.
var ErrEmptySource = errors.New("helpers: source has no header row")

// ReadCSV reads a whole CSV table. Ragged rows are accepted (short rows
// read as missing values); rows that fail to parse are skipped.
func ReadCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptySource
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	var rows [][]string
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}
	if skipped > 0 {
		slog.Warn("skipped malformed CSV rows", "count", skipped)
	}
	return headers, rows, nil
}

// ParseCSV parses CSV data into Responses.
func ParseCSV(r io.Reader, cols schema.Columns) ([]engine.Response, error) {
	headers, rows, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}
	return BuildResponses(headers, rows, cols)
}

// BuildResponses maps table rows onto Responses using the column contract.
// Missing answer cells become null answers; missing section, question,
// grade or major cells become empty strings.
func BuildResponses(headers []string, rows [][]string, cols schema.Columns) ([]engine.Response, error) {
	idx, err := cols.WithDefaults().Resolve(headers)
	if err != nil {
		return nil, err
	}

	responses := make([]engine.Response, 0, len(rows))
	for _, row := range rows {
		r := engine.Response{
			Section:    cell(row, idx.Section),
			Question:   cell(row, idx.Question),
			GradeLevel: cell(row, idx.GradeLevel),
			Major:      cell(row, idx.Major),
		}
		if a := cell(row, idx.Answer); a != "" {
			r.Answer = &a
		}
		responses = append(responses, r)
	}
	return responses, nil
}

// cell returns the trimmed value at i, or "" when absent or an NA token.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	val := strings.TrimSpace(row[i])
	if schema.IsMissing(val) {
		return ""
	}
	return val
}
