package engine

import "errors"

var (
	// ErrQuestionIndexOutOfRange is returned when a positional question
	// selection does not exist in the section.
	ErrQuestionIndexOutOfRange = errors.New("engine: question index out of range")

	// ErrQuestionNotInSection is returned when the selected question belongs
	// to a different section than the one selected.
	ErrQuestionNotInSection = errors.New("engine: question not in section")
)
