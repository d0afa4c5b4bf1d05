package engine

// ============================================================================
// SUMMARY — the three summary cards
// ============================================================================
// Null answers count toward the total but never toward the frequency table
// or the unique count.
// ============================================================================

// frequency is an answer frequency table that remembers first-occurrence order.
type frequency struct {
	order  []string
	counts map[string]int
}

func buildFrequency(view View) frequency {
	f := frequency{counts: make(map[string]int)}
	for i := 0; i < view.Len(); i++ {
		a, ok := view.Answer(i)
		if !ok {
			continue
		}
		if _, seen := f.counts[a]; !seen {
			f.order = append(f.order, a)
		}
		f.counts[a]++
	}
	return f
}

func (f frequency) answered() int {
	total := 0
	for _, c := range f.counts {
		total += c
	}
	return total
}

// mode returns the answer with the highest count. On a tie the answer seen
// first wins.
func (f frequency) mode() (string, bool) {
	best, bestCount := "", 0
	for _, a := range f.order {
		if c := f.counts[a]; c > bestCount {
			best, bestCount = a, c
		}
	}
	return best, bestCount > 0
}

// Summarize computes the summary cards for a filtered view.
func Summarize(view View) SummaryResult {
	f := buildFrequency(view)
	s := SummaryResult{
		TotalResponses:    view.Len(),
		MostCommonAnswer:  NotAvailable,
		UniqueAnswerCount: len(f.order),
	}
	s.UnansweredCount = s.TotalResponses - f.answered()
	if mode, ok := f.mode(); ok {
		s.MostCommonAnswer = mode
	}
	return s
}
