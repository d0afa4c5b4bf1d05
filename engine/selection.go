package engine

import "fmt"

// Selection tracks one caller's filter choices and enforces that a question
// always belongs to the selected section. Changing the section drops the
// question, moving the selection back to AwaitingSelection.
//
// A Selection is not safe for concurrent use; each caller owns its own.
type Selection struct {
	view View
	spec FilterSpec
}

// NewSelection starts a selection on section with both demographic filters
// set to All.
func NewSelection(view View, section string) *Selection {
	return &Selection{
		view: view,
		spec: FilterSpec{Section: section, GradeLevel: All, Major: All},
	}
}

// State reports whether a question has been selected.
func (s *Selection) State() State {
	if s.spec.HasQuestion() {
		return Selected
	}
	return AwaitingSelection
}

// Spec returns a copy of the current FilterSpec.
func (s *Selection) Spec() FilterSpec {
	spec := s.spec
	if spec.Question != nil {
		q := *spec.Question
		spec.Question = &q
	}
	return spec
}

// Questions lists the questions selectable in the current section.
func (s *Selection) Questions() []string {
	return QuestionsForSection(s.view, s.spec.Section)
}

// SelectSection switches section and clears any selected question.
func (s *Selection) SelectSection(section string) {
	if section == s.spec.Section {
		return
	}
	s.spec.Section = section
	s.spec.Question = nil
	s.spec.QuestionIndex = nil
}

// SelectQuestion selects a question by value.
func (s *Selection) SelectQuestion(question string) error {
	if !sectionHasQuestion(s.view, s.spec.Section, question) {
		return fmt.Errorf("%w: %q in section %q", ErrQuestionNotInSection, question, s.spec.Section)
	}
	s.spec.Question = &question
	s.spec.QuestionIndex = nil
	return nil
}

// SelectQuestionIndex selects a question by its position in Questions().
func (s *Selection) SelectQuestionIndex(index int) error {
	q, ok := QuestionAt(s.view, s.spec.Section, index)
	if !ok {
		return fmt.Errorf("%w: %d in section %q", ErrQuestionIndexOutOfRange, index, s.spec.Section)
	}
	s.spec.Question = &q
	s.spec.QuestionIndex = nil
	return nil
}

// SetGradeLevel sets the grade level filter. Empty means All.
func (s *Selection) SetGradeLevel(grade string) { s.spec.GradeLevel = filterLabel(grade) }

// SetMajor sets the major filter. Empty means All.
func (s *Selection) SetMajor(major string) { s.spec.Major = filterLabel(major) }

// Execute runs the pipeline for the current selection.
func (s *Selection) Execute(opts ...Option) (*Result, error) {
	return Execute(s.view, s.Spec(), opts...)
}
