package engine

// ============================================================================
// SURVEY ENGINE TYPES
// ============================================================================
// Response rows are immutable once loaded. Every query result below is a
// fresh value derived from a View; nothing here points back into mutable
// state.
// ============================================================================

// All is the filter value that disables the grade level or major predicate.
const All = "All"

// NotAvailable is reported as the most common answer when nothing was answered.
const NotAvailable = "N/A"

// ============================================================================
// RESPONSE — one respondent's answer to one question
// ============================================================================

// Response is a single survey row. A nil Answer means the respondent left
// the question blank. Empty GradeLevel or Major means the value is missing.
type Response struct {
	Section    string  `json:"section"`
	Question   string  `json:"question"`
	Answer     *string `json:"answer"`
	GradeLevel string  `json:"gradeLevel"`
	Major      string  `json:"major"`
}

// Answered builds a Response with a non-null answer.
func Answered(section, question, answer, gradeLevel, major string) Response {
	return Response{
		Section:    section,
		Question:   question,
		Answer:     &answer,
		GradeLevel: gradeLevel,
		Major:      major,
	}
}

// Unanswered builds a Response whose answer is null.
func Unanswered(section, question, gradeLevel, major string) Response {
	return Response{
		Section:    section,
		Question:   question,
		GradeLevel: gradeLevel,
		Major:      major,
	}
}

// HasAnswer reports whether the answer is non-null.
func (r Response) HasAnswer() bool { return r.Answer != nil }

// AnswerText returns the answer, or "" when it is null.
func (r Response) AnswerText() string {
	if r.Answer == nil {
		return ""
	}
	return *r.Answer
}

// ============================================================================
// FILTERSPEC — the current user selection
// ============================================================================

// FilterSpec selects the subset of responses to summarize.
// Question and QuestionIndex are alternative selectors: Question wins when
// both are set. GradeLevel and Major equal to All (or empty) do not filter.
type FilterSpec struct {
	Section       string  `json:"section"`
	Question      *string `json:"question,omitempty"`
	QuestionIndex *int    `json:"questionIndex,omitempty"`
	GradeLevel    string  `json:"gradeLevel"`
	Major         string  `json:"major"`
}

// HasQuestion reports whether a question has been selected, by value or index.
func (f FilterSpec) HasQuestion() bool {
	return (f.Question != nil && *f.Question != "") || f.QuestionIndex != nil
}

// QuestionText returns the selected question value, or "".
func (f FilterSpec) QuestionText() string {
	if f.Question == nil {
		return ""
	}
	return *f.Question
}

// filtersGrade reports whether the grade level predicate is active.
func (f FilterSpec) filtersGrade() bool {
	return f.GradeLevel != "" && f.GradeLevel != All
}

// filtersMajor reports whether the major predicate is active.
func (f FilterSpec) filtersMajor() bool {
	return f.Major != "" && f.Major != All
}

// ============================================================================
// RESULTS
// ============================================================================

// SummaryResult feeds the three summary cards.
type SummaryResult struct {
	TotalResponses    int    `json:"totalResponses"`
	MostCommonAnswer  string `json:"mostCommonAnswer"`
	UniqueAnswerCount int    `json:"uniqueAnswerCount"`
	UnansweredCount   int    `json:"unansweredCount"`
}

// EmptySummary is the summary of an empty selection.
func EmptySummary() SummaryResult {
	return SummaryResult{MostCommonAnswer: NotAvailable}
}

// AnswerCount is one row of the answer frequency table.
type AnswerCount struct {
	Answer  string  `json:"answer"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // share of answered rows, 0–100
}

// GroupCount is one row of a (group, answer) breakdown.
type GroupCount struct {
	Group  string `json:"group"`
	Answer string `json:"answer"`
	Count  int    `json:"count"`
}

// AggregationTables holds the three chart source tables.
// All three are computed from the same filtered view as the summary.
type AggregationTables struct {
	AnswerCounts []AnswerCount `json:"answerCounts"`
	ByGradeLevel []GroupCount  `json:"byGradeLevel"`
	ByMajor      []GroupCount  `json:"byMajor"`
}

// EmptyTables returns tables with non-nil, zero-length slices so they
// serialize as [] rather than null.
func EmptyTables() AggregationTables {
	return AggregationTables{
		AnswerCounts: []AnswerCount{},
		ByGradeLevel: []GroupCount{},
		ByMajor:      []GroupCount{},
	}
}

// State is the selection state of a dashboard.
type State string

const (
	AwaitingSelection State = "awaiting_selection"
	Selected          State = "selected"
)

// Result is the engine's render-ready output for one FilterSpec.
type Result struct {
	State       State             `json:"state"`
	Section     string            `json:"section"`
	Question    string            `json:"question,omitempty"`
	GradeLevel  string            `json:"gradeLevel"`
	Major       string            `json:"major"`
	Summary     SummaryResult     `json:"summary"`
	AnswerOrder []string          `json:"answerOrder"`
	Tables      AggregationTables `json:"tables"`
	Charts      *Charts           `json:"charts,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// Charts bundles the three dashboard charts.
type Charts struct {
	Pie          *ChartConfig `json:"pie"`
	ByGradeLevel *ChartConfig `json:"byGradeLevel"`
	ByMajor      *ChartConfig `json:"byMajor"`
}

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "pie", "stacked_bar"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Categories []string      `json:"categories,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	Legend     string        `json:"legend,omitempty"` // series dimension label
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
