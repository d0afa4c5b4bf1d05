package engine

import (
	"fmt"
)

// ============================================================================
// TEXT BUILDER — Summary cards and one-line replies
// ============================================================================

// Card is one summary card: a heading and its value.
type Card struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// BuildCards returns the three summary cards in display order.
// A result awaiting selection has no cards.
func BuildCards(res *Result) []Card {
	if res.State != Selected {
		return []Card{}
	}
	return []Card{
		{Title: "Total Responses", Value: FormatInt(res.Summary.TotalResponses)},
		{Title: "Most Common Answer", Value: res.Summary.MostCommonAnswer},
		{Title: "Unique Answers", Value: FormatInt(res.Summary.UniqueAnswerCount)},
	}
}

// BuildReply renders a one-line, human-readable description of a result.
func BuildReply(res *Result) string {
	if res.State != Selected {
		return res.Placeholder
	}
	s := res.Summary
	if s.TotalResponses == 0 {
		return fmt.Sprintf("No responses match %s.", describeFilters(res))
	}
	if s.UniqueAnswerCount == 0 {
		return fmt.Sprintf("%s responses for %s, none answered.", FormatInt(s.TotalResponses), describeFilters(res))
	}
	top := 0
	if len(res.Tables.AnswerCounts) > 0 {
		top = res.Tables.AnswerCounts[0].Count
	}
	return fmt.Sprintf("%s responses for %s. Most common answer: %q (%d of %d answered), %d distinct answers.",
		FormatInt(s.TotalResponses), describeFilters(res), s.MostCommonAnswer,
		top, s.TotalResponses-s.UnansweredCount, s.UniqueAnswerCount)
}

func describeFilters(res *Result) string {
	label := fmt.Sprintf("%q", res.Question)
	if res.GradeLevel != All {
		label += ", grade " + res.GradeLevel
	}
	if res.Major != All {
		label += ", major " + res.Major
	}
	return label
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}
