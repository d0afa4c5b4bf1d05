package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// SCHEMA — The survey column contract
// ============================================================================
// Maps the five columns the engine needs onto header names in the source
// file. Any other column is ignored.
// ============================================================================

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("schema: required column missing")

// Columns names the source headers for each survey field.
type Columns struct {
	Section    string `yaml:"section" json:"section"`
	Question   string `yaml:"question" json:"question"`
	Answer     string `yaml:"answer" json:"answer"`
	GradeLevel string `yaml:"grade_level" json:"gradeLevel"`
	Major      string `yaml:"major" json:"major"`
}

// DefaultColumns returns the headers used by the survey export.
func DefaultColumns() Columns {
	return Columns{
		Section:    "Section",
		Question:   "Question",
		Answer:     "Answer",
		GradeLevel: "College Grade Level",
		Major:      "Major/Field of Study",
	}
}

// WithDefaults fills empty names from DefaultColumns.
func (c Columns) WithDefaults() Columns {
	d := DefaultColumns()
	if c.Section == "" {
		c.Section = d.Section
	}
	if c.Question == "" {
		c.Question = d.Question
	}
	if c.Answer == "" {
		c.Answer = d.Answer
	}
	if c.GradeLevel == "" {
		c.GradeLevel = d.GradeLevel
	}
	if c.Major == "" {
		c.Major = d.Major
	}
	return c
}

// Names returns the header names in field order.
func (c Columns) Names() []string {
	return []string{c.Section, c.Question, c.Answer, c.GradeLevel, c.Major}
}

// Index holds the position of each survey field in a header row.
type Index struct {
	Section    int
	Question   int
	Answer     int
	GradeLevel int
	Major      int
}

// Resolve locates every required column in headers. Header matching trims
// surrounding whitespace and a UTF-8 BOM. All missing columns are reported
// in one error.
func (c Columns) Resolve(headers []string) (Index, error) {
	pos := make(map[string]int, len(headers))
	for i, h := range headers {
		h = cleanHeader(h)
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := pos[name]
		if !ok {
			missing = append(missing, fmt.Sprintf("%q", name))
			return -1
		}
		return i
	}

	idx := Index{
		Section:    lookup(c.Section),
		Question:   lookup(c.Question),
		Answer:     lookup(c.Answer),
		GradeLevel: lookup(c.GradeLevel),
		Major:      lookup(c.Major),
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

// cleanHeader trims whitespace and a leading UTF-8 byte order mark.
func cleanHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

// naTokens are the cell values read as missing, matching the common
// spreadsheet/dataframe NA spellings.
var naTokens = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// IsMissing reports whether a trimmed cell value denotes a missing value.
func IsMissing(val string) bool {
	return naTokens[val]
}
