package engine

// ============================================================================
// SECTION → QUESTION INDEX
// ============================================================================
// Question order is first occurrence in the dataset, never sorted. The
// button-style selector addresses questions by position in this sequence,
// so the order is part of the API.
// ============================================================================

// QuestionsForSection returns the distinct questions of a section in
// first-occurrence order. Unknown sections yield an empty slice, and so does
// "": rows with a missing section belong to no section.
func QuestionsForSection(view View, section string) []string {
	questions := []string{}
	if section == "" {
		return questions
	}
	seen := make(map[string]bool)
	for i := 0; i < view.Len(); i++ {
		if view.Field(i, FieldSection) != section {
			continue
		}
		q := view.Field(i, FieldQuestion)
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		questions = append(questions, q)
	}
	return questions
}

// QuestionAt resolves a positional selection within a section.
func QuestionAt(view View, section string, index int) (string, bool) {
	if index < 0 {
		return "", false
	}
	questions := QuestionsForSection(view, section)
	if index >= len(questions) {
		return "", false
	}
	return questions[index], true
}

// sectionHasQuestion reports whether question belongs to section.
func sectionHasQuestion(view View, section, question string) bool {
	if section == "" {
		return false
	}
	for i := 0; i < view.Len(); i++ {
		if view.Field(i, FieldSection) == section && view.Field(i, FieldQuestion) == question {
			return true
		}
	}
	return false
}
