package quiz

import "errors"

// OptionsPerQuestion is the option count for manually authored multiple-choice questions.
const OptionsPerQuestion = 4

var ErrInvalidQuiz = errors.New("please enter a title and at least one valid question")

// Question is either multiple-choice or long-answer, discriminated by LongAnswer.
type Question struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Correct    *int     `json:"correct"` // nil for manually authored long-answer questions
	LongAnswer bool     `json:"longAnswer"`
}

// Quiz is the client-local quiz: a title and questions in presentation order.
type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// NewMultipleChoice builds a multiple-choice question with the given correct index.
func NewMultipleChoice(text string, options []string, correct int) Question {
	return Question{
		Question: text,
		Options:  options,
		Correct:  &correct,
	}
}

// NewLongAnswer builds a long-answer question with no options and no answer key.
func NewLongAnswer(text string) Question {
	return Question{
		Question:   text,
		Options:    []string{},
		LongAnswer: true,
	}
}

// CorrectIndex returns the answer key, or -1 when the question has none.
func (q Question) CorrectIndex() int {
	if q.Correct == nil {
		return -1
	}
	return *q.Correct
}

// Option returns the option text at i, or "" when i is out of range.
func (q Question) Option(i int) string {
	if i < 0 || i >= len(q.Options) {
		return ""
	}
	return q.Options[i]
}

// Playable reports whether the quiz has at least one question.
func (q Quiz) Playable() bool {
	return len(q.Questions) > 0
}

// MultipleChoiceCount is the grading denominator.
func (q Quiz) MultipleChoiceCount() int {
	n := 0
	for _, question := range q.Questions {
		if !question.LongAnswer {
			n++
		}
	}
	return n
}
