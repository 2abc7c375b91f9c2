package quiz

import (
	"fmt"
	"strings"
)

const notAnswered = "Not Answered"

// Submission holds the player's answers keyed by question index.
type Submission struct {
	Choices map[int]int    // multiple-choice selections
	Texts   map[int]string // long-answer text
}

// NewSubmission returns an empty submission ready for answers.
func NewSubmission() Submission {
	return Submission{
		Choices: map[int]int{},
		Texts:   map[int]string{},
	}
}

// Choose records a single selection for question i, replacing any previous one.
func (s *Submission) Choose(i, option int) {
	if s.Choices == nil {
		s.Choices = map[int]int{}
	}
	s.Choices[i] = option
}

// Write records long-answer text for question i.
func (s *Submission) Write(i int, text string) {
	if s.Texts == nil {
		s.Texts = map[int]string{}
	}
	s.Texts[i] = text
}

// ItemResult is the breakdown line for one question.
type ItemResult struct {
	Number        int    `json:"number"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	Answered      bool   `json:"answered"`
	Correct       bool   `json:"correct"`
	NeedsReview   bool   `json:"needsReview"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
}

// Result is the graded outcome of a submission.
type Result struct {
	Score int          `json:"score"`
	Total int          `json:"total"`
	Items []ItemResult `json:"items"`
}

// Summary renders the score line shown above the breakdown.
func (r Result) Summary() string {
	return fmt.Sprintf("You scored %d / %d (MCQs auto-graded)", r.Score, r.Total)
}

// Grade scores multiple-choice questions by exact index match. Long-answer questions are
// never auto-graded; they are flagged for manual review and excluded from the score.
func Grade(q Quiz, sub Submission) Result {
	res := Result{
		Total: q.MultipleChoiceCount(),
		Items: make([]ItemResult, 0, len(q.Questions)),
	}

	for i, question := range q.Questions {
		item := ItemResult{Number: i + 1, Question: question.Question}

		if question.LongAnswer {
			text := strings.TrimSpace(sub.Texts[i])
			item.Answered = text != ""
			item.UserAnswer = text
			if !item.Answered {
				item.UserAnswer = notAnswered
			}
			item.NeedsReview = true
			res.Items = append(res.Items, item)
			continue
		}

		selected, ok := sub.Choices[i]
		if ok && selected >= 0 && selected < len(question.Options) {
			item.Answered = true
			item.UserAnswer = question.Options[selected]
		} else {
			item.UserAnswer = notAnswered
		}

		if item.Answered && selected == question.CorrectIndex() {
			item.Correct = true
			res.Score++
		} else {
			item.CorrectAnswer = question.Option(question.CorrectIndex())
		}
		res.Items = append(res.Items, item)
	}

	return res
}
