package engine

import (
	"fmt"
)

// ============================================================================
// FILTERS — FilterSpec matching via View
// ============================================================================
// Single-pass filter: checks every active predicate per response in one loop.
// Returns a subView (index list into parent), zero data copy.
// ============================================================================

type predicate struct {
	field Field
	value string
}

// ApplyFilter returns a view of the responses matching spec.
// Section is always matched; question only when selected; grade level and
// major unless set to All. Predicates are AND-combined, exact and
// case-sensitive.
//
// A positional question is resolved against view; an index that does not
// resolve matches nothing. A spec with no question matches the whole
// section. Callers must not summarize that view; see Execute.
func ApplyFilter(view View, spec FilterSpec) View {
	if spec.Section == "" {
		return newSubView(view, []int{})
	}
	preds := []predicate{{FieldSection, spec.Section}}
	q := spec.QuestionText()
	if q == "" && spec.QuestionIndex != nil {
		var ok bool
		if q, ok = QuestionAt(view, spec.Section, *spec.QuestionIndex); !ok {
			return newSubView(view, []int{})
		}
	}
	if q != "" {
		preds = append(preds, predicate{FieldQuestion, q})
	}
	if spec.filtersGrade() {
		preds = append(preds, predicate{FieldGradeLevel, spec.GradeLevel})
	}
	if spec.filtersMajor() {
		preds = append(preds, predicate{FieldMajor, spec.Major})
	}

	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		pass := true
		for _, p := range preds {
			if view.Field(i, p.field) != p.value {
				pass = false
				break
			}
		}
		if pass {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}

// ResolveQuestion turns a positional selection into a question value.
// An explicit question is kept as is, even when it does not belong to the
// section: the filter then matches nothing and the result is the empty
// summary. Specs without a question are returned unchanged.
func ResolveQuestion(view View, spec FilterSpec) (FilterSpec, error) {
	if q := spec.QuestionText(); q != "" {
		spec.QuestionIndex = nil
		return spec, nil
	}
	spec.Question = nil
	if spec.QuestionIndex == nil {
		return spec, nil
	}
	q, ok := QuestionAt(view, spec.Section, *spec.QuestionIndex)
	if !ok {
		return spec, fmt.Errorf("%w: %d in section %q", ErrQuestionIndexOutOfRange, *spec.QuestionIndex, spec.Section)
	}
	spec.Question = &q
	spec.QuestionIndex = nil
	return spec, nil
}
