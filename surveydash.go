// Package surveydash provides the query core of a survey results dashboard.
//
// Usage:
//
//	import (
//	    "github.com/spektr-org/surveydash/engine"
//	    "github.com/spektr-org/surveydash/helpers"
//	)
//
//	ds, err := helpers.Load(ctx, helpers.DefaultSource, schema.DefaultColumns())
//	result, err := engine.Execute(ds, engine.FilterSpec{
//	    Section:    "Study Habits",
//	    Question:   &question,
//	    GradeLevel: engine.All,
//	    Major:      "Biology",
//	})
//
// The engine filters the loaded responses by section, question, grade level
// and major, and returns render-ready output: summary cards, answer
// frequency tables, grouped breakdowns and chart configs. The dataset is
// loaded once and never modified; every query is a pure function of the
// dataset and the selection.
//
// The schema package maps source headers onto survey fields, helpers loads
// CSV and XLSX sources, and cmd/surveydash exposes the engine as a CLI and
// JSON API.
package surveydash
