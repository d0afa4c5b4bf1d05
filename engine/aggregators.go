package engine

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// ============================================================================
// AGGREGATORS — Grouping and Counting via View
// ============================================================================
// All functions operate on View: zero-copy access to the filtered subset.
// Grouping produces subViews (index lists into the parent view).
// ============================================================================

// group is an intermediate grouping result.
type group struct {
	Key   string
	Count int
	View  View // sub-view for rows in this group (zero-copy)
}

// BuildTables computes all three chart tables from one filtered view.
func BuildTables(view View) AggregationTables {
	return AggregationTables{
		AnswerCounts: AnswerCounts(view),
		ByGradeLevel: ByGradeLevel(view),
		ByMajor:      ByMajor(view),
	}
}

// AnswerOrder returns the distinct non-null answers sorted lexicographically.
// Chart category axes use this order.
func AnswerOrder(view View) []string {
	f := buildFrequency(view)
	order := make([]string, len(f.order))
	copy(order, f.order)
	sort.Strings(order)
	return order
}

// AnswerCounts returns one row per distinct non-null answer, highest count
// first. Equal counts keep first-occurrence order.
func AnswerCounts(view View) []AnswerCount {
	f := buildFrequency(view)
	answered := f.answered()

	rows := make([]AnswerCount, 0, len(f.order))
	for _, a := range f.order {
		rows = append(rows, AnswerCount{
			Answer:  a,
			Count:   f.counts[a],
			Percent: percentOf(f.counts[a], answered),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	return rows
}

// ByGradeLevel counts answers per (grade level, answer) pair.
func ByGradeLevel(view View) []GroupCount {
	return countByField(view, FieldGradeLevel)
}

// ByMajor counts answers per (major, answer) pair.
func ByMajor(view View) []GroupCount {
	return countByField(view, FieldMajor)
}

// countByField groups by (field, answer). Rows with an empty field value or
// a null answer are left out. Output is sorted by group, then answer.
func countByField(view View, f Field) []GroupCount {
	rows := []GroupCount{}
	for _, g := range groupBySingle(view, f) {
		if g.Key == "" {
			continue
		}
		for _, sg := range groupByAnswer(g.View) {
			rows = append(rows, GroupCount{Group: g.Key, Answer: sg.Key, Count: sg.Count})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Group != rows[j].Group {
			return rows[i].Group < rows[j].Group
		}
		return rows[i].Answer < rows[j].Answer
	})
	return rows
}

// ============================================================================
// GROUPING
// ============================================================================

func groupBySingle(view View, f Field) []group {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		key := view.Field(i, f)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	groups := make([]group, 0, len(order))
	for _, key := range order {
		groups = append(groups, group{
			Key:   key,
			Count: len(grouped[key]),
			View:  newSubView(view, grouped[key]),
		})
	}
	return groups
}

// groupByAnswer groups non-null answers in first-occurrence order.
func groupByAnswer(view View) []group {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		a, ok := view.Answer(i)
		if !ok {
			continue
		}
		if _, exists := grouped[a]; !exists {
			order = append(order, a)
		}
		grouped[a] = append(grouped[a], i)
	}

	groups := make([]group, 0, len(order))
	for _, key := range order {
		groups = append(groups, group{
			Key:   key,
			Count: len(grouped[key]),
			View:  newSubView(view, grouped[key]),
		})
	}
	return groups
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// percentOf returns part/whole as a percentage rounded to 2 places.
func percentOf(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	p, err := stats.Round(float64(part)*100/float64(whole), 2)
	if err != nil {
		return 0
	}
	return p
}
