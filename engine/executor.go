package engine

// ============================================================================
// EXECUTOR — FilterSpec → Result
// ============================================================================
// Entry point: Execute(view, spec, opts...)
//
// Pipeline:
//   1. Resolve a positional question selection
//   2. No question → AWAITING_SELECTION result, nothing aggregated
//   3. Apply filter → subView
//   4. Summary, tables, answer order and charts from that same subView
//
// Pure: the same (view, spec) always yields the same Result, and nothing
// is written anywhere but the returned value.
// ============================================================================

// Execute runs the filter-to-aggregation pipeline for one selection.
// The only error is an out-of-range question index.
func Execute(view View, spec FilterSpec, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)

	spec, err := ResolveQuestion(view, spec)
	if err != nil {
		return nil, err
	}

	if !spec.HasQuestion() {
		cfg.Logger.Debug("no question selected", "section", spec.Section)
		return awaitingResult(spec, cfg.Placeholder), nil
	}

	filtered := ApplyFilter(view, spec)
	cfg.Logger.Debug("filtered responses",
		"section", spec.Section,
		"question", spec.QuestionText(),
		"grade", spec.GradeLevel,
		"major", spec.Major,
		"matched", filtered.Len(),
		"of", view.Len())

	order := AnswerOrder(filtered)
	tables := BuildTables(filtered)

	return &Result{
		State:       Selected,
		Section:     spec.Section,
		Question:    spec.QuestionText(),
		GradeLevel:  filterLabel(spec.GradeLevel),
		Major:       filterLabel(spec.Major),
		Summary:     Summarize(filtered),
		AnswerOrder: order,
		Tables:      tables,
		Charts:      BuildCharts(spec.QuestionText(), tables, order, cfg.Palette),
	}, nil
}

func awaitingResult(spec FilterSpec, placeholder string) *Result {
	return &Result{
		State:       AwaitingSelection,
		Section:     spec.Section,
		GradeLevel:  filterLabel(spec.GradeLevel),
		Major:       filterLabel(spec.Major),
		Summary:     EmptySummary(),
		AnswerOrder: []string{},
		Tables:      EmptyTables(),
		Placeholder: placeholder,
	}
}

// filterLabel normalizes an unset filter to All.
func filterLabel(v string) string {
	if v == "" {
		return All
	}
	return v
}
