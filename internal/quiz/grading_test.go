package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradingQuiz() Quiz {
	opts := []string{"w", "x", "y", "z"}
	return Quiz{
		Title: "Grading",
		Questions: []Question{
			NewMultipleChoice("q1", opts, 0),
			NewMultipleChoice("q2", opts, 1),
			NewMultipleChoice("q3", opts, 2),
			NewLongAnswer("q4"),
		},
	}
}

func TestGradeScoresMultipleChoiceOnly(t *testing.T) {
	sub := NewSubmission()
	sub.Choose(0, 0)
	sub.Choose(1, 2)
	sub.Choose(2, 2)
	sub.Write(3, "an essay")

	res := Grade(gradingQuiz(), sub)

	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, "You scored 2 / 3 (MCQs auto-graded)", res.Summary())

	require.Len(t, res.Items, 4)
	assert.True(t, res.Items[0].Correct)
	assert.False(t, res.Items[1].Correct)
	assert.Equal(t, "y", res.Items[1].UserAnswer)
	assert.Equal(t, "x", res.Items[1].CorrectAnswer)
	assert.True(t, res.Items[2].Correct)
	assert.Empty(t, res.Items[2].CorrectAnswer)

	essay := res.Items[3]
	assert.True(t, essay.NeedsReview)
	assert.False(t, essay.Correct)
	assert.Equal(t, "an essay", essay.UserAnswer)
}

func TestGradeUnansweredCountsWrong(t *testing.T) {
	res := Grade(gradingQuiz(), Submission{})

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 3, res.Total)
	for i := 0; i < 3; i++ {
		assert.False(t, res.Items[i].Answered)
		assert.Equal(t, notAnswered, res.Items[i].UserAnswer)
	}
	assert.Equal(t, notAnswered, res.Items[3].UserAnswer)
	assert.True(t, res.Items[3].NeedsReview)
}

func TestGradeOutOfRangeSelection(t *testing.T) {
	sub := NewSubmission()
	sub.Choose(0, 7)

	res := Grade(gradingQuiz(), sub)
	assert.False(t, res.Items[0].Answered)
	assert.False(t, res.Items[0].Correct)
	assert.Equal(t, "w", res.Items[0].CorrectAnswer)
}

func TestGradeLongAnswerOnlyQuiz(t *testing.T) {
	q := Quiz{Title: "essays", Questions: []Question{NewLongAnswer("a"), NewLongAnswer("b")}}
	res := Grade(q, NewSubmission())
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, "You scored 0 / 0 (MCQs auto-graded)", res.Summary())
}

func TestZeroValueSubmissionRecordsAnswers(t *testing.T) {
	var sub Submission
	require.NotPanics(t, func() {
		sub.Choose(0, 0)
		sub.Write(3, "late essay")
	})

	res := Grade(gradingQuiz(), sub)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, "late essay", res.Items[3].UserAnswer)
	assert.Equal(t, notAnswered, res.Items[1].UserAnswer)
}
