package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFilter(t *testing.T) {
	ds := surveyDataset()
	q := "How often do you study?"

	tests := []struct {
		name string
		spec FilterSpec
		want int
	}{
		{"section only", FilterSpec{Section: "Habits"}, 7},
		{"question", FilterSpec{Section: "Habits", Question: &q}, 5},
		{"all filters disabled", FilterSpec{Section: "Habits", Question: &q, GradeLevel: All, Major: All}, 5},
		{"grade", FilterSpec{Section: "Habits", Question: &q, GradeLevel: "Senior"}, 2},
		{"grade and major", FilterSpec{Section: "Habits", Question: &q, GradeLevel: "Senior", Major: "Biology"}, 1},
		{"case sensitive", FilterSpec{Section: "habits", Question: &q}, 0},
		{"question from another section", FilterSpec{Section: "Career", Question: &q}, 0},
		{"unknown major", FilterSpec{Section: "Habits", Question: &q, Major: "Physics"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilter(ds, tt.spec)
			assert.Equal(t, tt.want, got.Len())
			for i := 0; i < got.Len(); i++ {
				assert.Equal(t, tt.spec.Section, got.Field(i, FieldSection))
			}
		})
	}
}

func TestApplyFilterQuestionIndex(t *testing.T) {
	ds := NewDataset([]Response{
		Answered("S", "Q1", "Yes", "", ""),
		Answered("S", "Q2", "No", "", ""),
		Answered("S", "Q2", "No", "", ""),
	})

	got := Summarize(ApplyFilter(ds, FilterSpec{Section: "S", QuestionIndex: ptr(0)}))
	assert.Equal(t, 1, got.TotalResponses)
	assert.Equal(t, "Yes", got.MostCommonAnswer)
	assert.Equal(t, 1, got.UniqueAnswerCount)

	assert.Equal(t, 2, ApplyFilter(ds, FilterSpec{Section: "S", QuestionIndex: ptr(1)}).Len())

	q := "Q2"
	byIndex := ApplyFilter(ds, FilterSpec{Section: "S", QuestionIndex: ptr(1)})
	byValue := ApplyFilter(ds, FilterSpec{Section: "S", Question: &q})
	assert.Equal(t, Materialize(byValue), Materialize(byIndex))

	for _, idx := range []int{-1, 2} {
		assert.Zero(t, ApplyFilter(ds, FilterSpec{Section: "S", QuestionIndex: ptr(idx)}).Len(), idx)
	}
}

func TestApplyFilterEmptySection(t *testing.T) {
	ds := NewDataset([]Response{
		Answered("", "Orphan", "Yes", "", ""),
		Answered("S", "Q1", "Yes", "", ""),
	})
	q := "Orphan"

	assert.Zero(t, ApplyFilter(ds, FilterSpec{}).Len())
	assert.Zero(t, ApplyFilter(ds, FilterSpec{Question: &q}).Len())
}

func TestApplyFilterDoesNotMutate(t *testing.T) {
	ds := surveyDataset()
	before := Materialize(ds)

	_ = ApplyFilter(ds, FilterSpec{Section: "Habits", GradeLevel: "Senior"})
	assert.Equal(t, before, Materialize(ds))
}

func TestApplyFilterNested(t *testing.T) {
	ds := surveyDataset()
	q := "How often do you study?"

	outer := ApplyFilter(ds, FilterSpec{Section: "Habits", Question: &q})
	inner := ApplyFilter(outer, FilterSpec{Section: "Habits", Major: "Chemistry"})
	require.Equal(t, 2, inner.Len())
	assert.Equal(t, Materialize(ApplyFilter(ds, FilterSpec{Section: "Habits", Question: &q, Major: "Chemistry"})), Materialize(inner))
}

func TestResolveQuestion(t *testing.T) {
	ds := surveyDataset()

	spec, err := ResolveQuestion(ds, FilterSpec{Section: "Habits", QuestionIndex: ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, "How often do you study?", spec.QuestionText())
	assert.Nil(t, spec.QuestionIndex)

	// Question wins over index.
	spec, err = ResolveQuestion(ds, FilterSpec{Section: "Habits", Question: ptr("Where do you study?"), QuestionIndex: ptr(9)})
	require.NoError(t, err)
	assert.Equal(t, "Where do you study?", spec.QuestionText())

	// Empty question counts as no selection.
	spec, err = ResolveQuestion(ds, FilterSpec{Section: "Habits", Question: ptr("")})
	require.NoError(t, err)
	assert.False(t, spec.HasQuestion())

	_, err = ResolveQuestion(ds, FilterSpec{Section: "Habits", QuestionIndex: ptr(-1)})
	assert.ErrorIs(t, err, ErrQuestionIndexOutOfRange)

	_, err = ResolveQuestion(ds, FilterSpec{Section: "Nope", QuestionIndex: ptr(0)})
	assert.ErrorIs(t, err, ErrQuestionIndexOutOfRange)
}
