package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionTransitions(t *testing.T) {
	sel := NewSelection(surveyDataset(), "Habits")
	assert.Equal(t, AwaitingSelection, sel.State())
	assert.Equal(t, All, sel.Spec().GradeLevel)
	assert.Equal(t, All, sel.Spec().Major)

	require.NoError(t, sel.SelectQuestion("Where do you study?"))
	assert.Equal(t, Selected, sel.State())

	// Demographic filters keep the selection.
	sel.SetGradeLevel("Junior")
	sel.SetMajor("")
	assert.Equal(t, Selected, sel.State())
	assert.Equal(t, "Junior", sel.Spec().GradeLevel)
	assert.Equal(t, All, sel.Spec().Major)

	// Re-selecting the same section keeps the question.
	sel.SelectSection("Habits")
	assert.Equal(t, Selected, sel.State())

	// Changing section clears it.
	sel.SelectSection("Career")
	assert.Equal(t, AwaitingSelection, sel.State())
	assert.Nil(t, sel.Spec().Question)
	assert.Equal(t, "Junior", sel.Spec().GradeLevel)
	assert.Equal(t, []string{"Do you plan on grad school?"}, sel.Questions())

	require.NoError(t, sel.SelectQuestionIndex(0))
	assert.Equal(t, "Do you plan on grad school?", sel.Spec().QuestionText())
}

func TestSelectionRejectsForeignQuestion(t *testing.T) {
	sel := NewSelection(surveyDataset(), "Career")

	err := sel.SelectQuestion("Where do you study?")
	assert.ErrorIs(t, err, ErrQuestionNotInSection)
	assert.Equal(t, AwaitingSelection, sel.State())

	err = sel.SelectQuestionIndex(1)
	assert.ErrorIs(t, err, ErrQuestionIndexOutOfRange)
	assert.Equal(t, AwaitingSelection, sel.State())
}

func TestSelectionExecute(t *testing.T) {
	sel := NewSelection(surveyDataset(), "Habits")

	res, err := sel.Execute()
	require.NoError(t, err)
	assert.Equal(t, AwaitingSelection, res.State)

	require.NoError(t, sel.SelectQuestionIndex(0))
	sel.SetMajor("Chemistry")
	res, err = sel.Execute()
	require.NoError(t, err)
	assert.Equal(t, Selected, res.State)
	assert.Equal(t, SummaryResult{TotalResponses: 2, MostCommonAnswer: "Weekly", UniqueAnswerCount: 2}, res.Summary)
}

func TestSelectionSpecIsCopy(t *testing.T) {
	sel := NewSelection(surveyDataset(), "Habits")
	require.NoError(t, sel.SelectQuestion("Where do you study?"))

	spec := sel.Spec()
	*spec.Question = "changed"
	assert.Equal(t, "Where do you study?", sel.Spec().QuestionText())
}
