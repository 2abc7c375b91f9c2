package main

import (
	"fmt"
	"io"

	"github.com/gokatarajesh/quiz-relay/internal/client"
	"github.com/gokatarajesh/quiz-relay/internal/quiz"
)

func renderQuiz(w io.Writer, st client.State) {
	if !st.Quiz.Playable() {
		fmt.Fprintln(w, "no quiz yet: use generate or author")
		return
	}
	fmt.Fprintf(w, "%s (%d questions)\n", st.Quiz.Title, len(st.Quiz.Questions))
	for _, b := range st.Blocks {
		renderBlock(w, b)
	}
	fmt.Fprintln(w, `type "play" to answer`)
}

func renderBlock(w io.Writer, b quiz.Block) {
	fmt.Fprintf(w, "Q%d. %s\n", b.Number, b.Text)
	if b.Input == quiz.InputText {
		fmt.Fprintln(w, "   (long answer)")
		return
	}
	for i, choice := range b.Choices {
		fmt.Fprintf(w, "   %d) %s\n", i+1, choice)
	}
}

func renderResult(w io.Writer, res quiz.Result) {
	fmt.Fprintln(w, res.Summary())
	for _, item := range res.Items {
		fmt.Fprintf(w, "Q%d: %s\n", item.Number, item.Question)
		fmt.Fprintf(w, "   Your Answer: %s\n", item.UserAnswer)
		switch {
		case item.NeedsReview:
			fmt.Fprintln(w, "   (long answer, review manually)")
		case item.Correct:
			fmt.Fprintln(w, "   Correct")
		default:
			fmt.Fprintf(w, "   Wrong (correct: %s)\n", item.CorrectAnswer)
		}
	}
}
