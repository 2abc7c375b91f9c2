package client

import (
	"fmt"

	"github.com/gokatarajesh/quiz-relay/internal/quiz"
)

// MaxGeneratedQuestions caps how many relay items become quiz questions.
const MaxGeneratedQuestions = 5

// GeneratedTitle is the title given to a quiz built from the relay.
func GeneratedTitle(topic, difficulty string) string {
	return fmt.Sprintf("%s (%s) Quiz", topic, difficulty)
}

// MapGenerated converts relay items into quiz questions, keeping order and at most
// MaxGeneratedQuestions. Items without options become long-answer questions. A missing
// or negative answer index falls back to the first option.
func MapGenerated(items []GeneratedItem) []quiz.Question {
	n := min(len(items), MaxGeneratedQuestions)
	questions := make([]quiz.Question, 0, n)
	for _, item := range items[:n] {
		questions = append(questions, mapItem(item))
	}
	return questions
}

func mapItem(item GeneratedItem) quiz.Question {
	options := item.Options
	if options == nil {
		options = []string{}
	}

	correct := answerIndex(item)
	if correct < 0 {
		correct = 0
	}
	return quiz.Question{
		Question:   item.Question,
		Options:    options,
		Correct:    &correct,
		LongAnswer: len(options) == 0,
	}
}

func answerIndex(item GeneratedItem) int {
	if item.Answer != nil {
		for i, opt := range item.Options {
			if opt == *item.Answer {
				return i
			}
		}
		return -1
	}
	if item.Correct != nil {
		return *item.Correct
	}
	return -1
}
