package engine

import "fmt"

// ============================================================================
// CHART BUILDER — Produces ChartConfigs from AggregationTables
// ============================================================================
// One pie over the answer counts, two stacked bars (answer on x, one series
// per grade level or major). Category axes always use AnswerOrder.
// ============================================================================

// DefaultPalette is a colour-blind-safe qualitative palette.
var DefaultPalette = []string{
	"#88CCEE", "#CC6677", "#DDCC77", "#117733", "#332288", "#AA4499",
	"#44AA99", "#999933", "#882255", "#661100", "#888888",
}

// BuildCharts produces the three dashboard charts for a question.
func BuildCharts(question string, tables AggregationTables, order []string, palette []string) *Charts {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Charts{
		Pie:          buildPie(question, tables.AnswerCounts, order, palette),
		ByGradeLevel: buildStackedBar("Answers by Grade Level: "+question, FieldGradeLevel, tables.ByGradeLevel, order, palette),
		ByMajor:      buildStackedBar("Answers by Major: "+question, FieldMajor, tables.ByMajor, order, palette),
	}
}

func buildPie(question string, counts []AnswerCount, order []string, palette []string) *ChartConfig {
	lookup := make(map[string]int, len(counts))
	for _, c := range counts {
		lookup[c.Answer] = c.Count
	}

	points := make([]ChartPoint, 0, len(order))
	for _, a := range order {
		points = append(points, ChartPoint{Label: a, Value: float64(lookup[a])})
	}

	return &ChartConfig{
		ChartType:  "pie",
		Title:      fmt.Sprintf("Distribution of Answers: %s", question),
		Categories: order,
		Series:     []ChartSeries{{Name: "Count", Data: points}},
		Colors:     assignColors(len(points), palette),
		ShowLegend: true,
		ShowGrid:   false,
	}
}

func buildStackedBar(title string, groupField Field, rows []GroupCount, order []string, palette []string) *ChartConfig {
	groups := make([]string, 0)
	cells := make(map[string]map[string]int)
	for _, r := range rows {
		if _, ok := cells[r.Group]; !ok {
			groups = append(groups, r.Group)
			cells[r.Group] = make(map[string]int)
		}
		cells[r.Group][r.Answer] += r.Count
	}

	series := make([]ChartSeries, 0, len(groups))
	for i, g := range groups {
		points := make([]ChartPoint, 0, len(order))
		for _, a := range order {
			points = append(points, ChartPoint{Label: a, Value: float64(cells[g][a])})
		}
		series = append(series, ChartSeries{
			Name:  g,
			Data:  points,
			Color: palette[i%len(palette)],
		})
	}

	return &ChartConfig{
		ChartType:  "stacked_bar",
		Title:      title,
		XAxis:      "Answer",
		YAxis:      "Count",
		Categories: order,
		Series:     series,
		Colors:     assignColors(len(series), palette),
		Legend:     groupField.String(),
		ShowLegend: true,
		ShowGrid:   true,
	}
}

func assignColors(count int, palette []string) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}
