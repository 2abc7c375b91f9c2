package quiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDraft(text string, correct int) Draft {
	return Draft{
		Text:          text,
		Options:       [OptionsPerQuestion]string{"A", "B", "C", "D"},
		CorrectOption: correct,
	}
}

func TestBuildQuizDropsOutOfRangeCorrect(t *testing.T) {
	q, err := BuildQuiz("  Capitals ", []Draft{
		fullDraft("Valid", 2),
		fullDraft("Too high", 5),
		fullDraft("Missing", 0),
		{Text: "Essay", LongAnswer: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "Capitals", q.Title)
	require.Len(t, q.Questions, 2)
	assert.Equal(t, "Valid", q.Questions[0].Question)
	assert.Equal(t, 1, q.Questions[0].CorrectIndex())
	assert.True(t, q.Questions[1].LongAnswer)
	assert.Nil(t, q.Questions[1].Correct)
	assert.Empty(t, q.Questions[1].Options)
}

func TestBuildQuizDropsIncompleteRows(t *testing.T) {
	blankOption := fullDraft("Blank option", 1)
	blankOption.Options[3] = "   "

	q, err := BuildQuiz("t", []Draft{
		blankOption,
		fullDraft("", 1),
		{LongAnswer: true, Text: "  "},
		fullDraft("ok", 4),
	})
	require.NoError(t, err)
	require.Len(t, q.Questions, 1)
	assert.Equal(t, 3, q.Questions[0].CorrectIndex())
}

func TestBuildQuizAggregateFailure(t *testing.T) {
	_, err := BuildQuiz("", []Draft{fullDraft("q", 1)})
	assert.ErrorIs(t, err, ErrInvalidQuiz)

	_, err = BuildQuiz("title", []Draft{fullDraft("q", 9)})
	assert.ErrorIs(t, err, ErrInvalidQuiz)

	_, err = BuildQuiz("title", nil)
	assert.ErrorIs(t, err, ErrInvalidQuiz)
}

func TestQuizJSONShape(t *testing.T) {
	q := Quiz{
		Title: "Mixed",
		Questions: []Question{
			NewMultipleChoice("2+2?", []string{"3", "4", "5", "6"}, 1),
			NewLongAnswer("Explain gravity"),
		},
	}
	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"title": "Mixed",
		"questions": [
			{"question": "2+2?", "options": ["3","4","5","6"], "correct": 1, "longAnswer": false},
			{"question": "Explain gravity", "options": [], "correct": null, "longAnswer": true}
		]
	}`, string(data))

	var back Quiz
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, q, back)
}

func TestBlocks(t *testing.T) {
	q := Quiz{Questions: []Question{
		NewLongAnswer("Why?"),
		NewMultipleChoice("Pick", []string{"a", "b", "c", "d"}, 0),
	}}
	blocks := Blocks(q)
	require.Len(t, blocks, 2)
	assert.Equal(t, InputText, blocks[0].Input)
	assert.Empty(t, blocks[0].Choices)
	assert.Equal(t, 2, blocks[1].Number)
	assert.Equal(t, InputChoice, blocks[1].Input)
	assert.Equal(t, []string{"a", "b", "c", "d"}, blocks[1].Choices)
}
