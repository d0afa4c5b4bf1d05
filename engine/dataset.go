package engine

// ============================================================================
// DATASET — the loaded survey, immutable after construction
// ============================================================================

type row struct {
	section    string
	question   string
	answer     string
	answered   bool
	gradeLevel string
	major      string
}

// Dataset is the immutable collection of survey responses.
// It has no mutation API and is safe for concurrent reads.
type Dataset struct {
	rows        []row
	sections    []string
	gradeLevels []string
	majors      []string
}

// NewDataset copies responses into a new Dataset.
// Later changes to the input slice do not affect the Dataset.
func NewDataset(responses []Response) *Dataset {
	ds := &Dataset{rows: make([]row, len(responses))}
	for i, r := range responses {
		ds.rows[i] = row{
			section:    r.Section,
			question:   r.Question,
			answer:     r.AnswerText(),
			answered:   r.HasAnswer(),
			gradeLevel: r.GradeLevel,
			major:      r.Major,
		}
	}
	ds.sections = UniqueValues(ds, FieldSection)
	ds.gradeLevels = UniqueValues(ds, FieldGradeLevel)
	ds.majors = UniqueValues(ds, FieldMajor)
	return ds
}

func (d *Dataset) Len() int { return len(d.rows) }

func (d *Dataset) Field(i int, f Field) string {
	if i < 0 || i >= len(d.rows) {
		return ""
	}
	r := &d.rows[i]
	switch f {
	case FieldSection:
		return r.section
	case FieldQuestion:
		return r.question
	case FieldGradeLevel:
		return r.gradeLevel
	case FieldMajor:
		return r.major
	}
	return ""
}

func (d *Dataset) Answer(i int) (string, bool) {
	if i < 0 || i >= len(d.rows) {
		return "", false
	}
	return d.rows[i].answer, d.rows[i].answered
}

// Sections returns the distinct sections in first-occurrence order.
func (d *Dataset) Sections() []string { return cloneStrings(d.sections) }

// GradeLevels returns the distinct non-empty grade levels in first-occurrence order.
func (d *Dataset) GradeLevels() []string { return cloneStrings(d.gradeLevels) }

// Majors returns the distinct non-empty majors in first-occurrence order.
func (d *Dataset) Majors() []string { return cloneStrings(d.majors) }

// HasSection reports whether any row belongs to section.
func (d *Dataset) HasSection(section string) bool {
	for _, s := range d.sections {
		if s == section {
			return true
		}
	}
	return false
}

// UniqueValues returns distinct non-empty values of a field across a view,
// in first-occurrence order.
func UniqueValues(view View, f Field) []string {
	seen := make(map[string]bool)
	result := []string{}
	for i := 0; i < view.Len(); i++ {
		val := view.Field(i, f)
		if val != "" && !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
