package engine

// ============================================================================
// VIEW — Zero-Copy Response Access
// ============================================================================
// The engine reads responses through this interface only.
//
// Implementations:
//   *Dataset — the loaded, immutable survey (owns the rows)
//   subView  — filtered subset (indices into parent, zero-copy)
//
// Filters and groupings produce subViews, so a query never copies rows and
// never touches the Dataset's storage.
// ============================================================================

// Field names a string column of a response.
type Field int

const (
	FieldSection Field = iota
	FieldQuestion
	FieldGradeLevel
	FieldMajor
)

// String returns the column's display label.
func (f Field) String() string {
	switch f {
	case FieldSection:
		return "Section"
	case FieldQuestion:
		return "Question"
	case FieldGradeLevel:
		return "Grade Level"
	case FieldMajor:
		return "Major"
	default:
		return "Unknown"
	}
}

// View provides indexed, read-only access to responses.
// The engine calls these in tight loops; keep implementations fast.
type View interface {
	Len() int
	Field(index int, f Field) string
	Answer(index int) (string, bool) // false when the answer is null
}

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// subView is a filtered subset of a parent View.
// Holds indices into the parent, no data copy.
type subView struct {
	parent  View
	indices []int
}

func newSubView(parent View, indices []int) View {
	return &subView{parent: parent, indices: indices}
}

func (v *subView) Len() int { return len(v.indices) }

func (v *subView) Field(i int, f Field) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.parent.Field(v.indices[i], f)
}

func (v *subView) Answer(i int) (string, bool) {
	if i < 0 || i >= len(v.indices) {
		return "", false
	}
	return v.parent.Answer(v.indices[i])
}

// Materialize copies a view's rows out as Responses.
func Materialize(view View) []Response {
	out := make([]Response, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		r := Response{
			Section:    view.Field(i, FieldSection),
			Question:   view.Field(i, FieldQuestion),
			GradeLevel: view.Field(i, FieldGradeLevel),
			Major:      view.Field(i, FieldMajor),
		}
		if a, ok := view.Answer(i); ok {
			r.Answer = &a
		}
		out = append(out, r)
	}
	return out
}
