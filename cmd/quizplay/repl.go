package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gokatarajesh/quiz-relay/internal/client"
	"github.com/gokatarajesh/quiz-relay/internal/quiz"
)

const helpText = `commands:
  signup <username> <password>
  login <username> <password>
  logout
  whoami
  generate             ask the relay for a quiz (prompts for topic and difficulty)
  author <file.json>   build a quiz from an authored JSON file
  show                 print the current quiz
  play                 answer the current quiz and see results
  reset                delete the saved quiz
  help
  quit`

type repl struct {
	ctrl *client.Controller
	in   *bufio.Scanner
	out  io.Writer
}

func newREPL(ctrl *client.Controller, in io.Reader, out io.Writer) *repl {
	return &repl{ctrl: ctrl, in: bufio.NewScanner(in), out: out}
}

// Run restores saved state and processes commands until quit or EOF.
func (r *repl) Run(ctx context.Context) error {
	loaded, err := r.ctrl.LoadSaved(ctx)
	if err != nil {
		return err
	}
	if st := r.ctrl.State(); st.LoggedIn() {
		fmt.Fprintf(r.out, "Welcome back, %s\n", st.CurrentUser)
	}
	if loaded {
		renderQuiz(r.out, r.ctrl.State())
	}
	fmt.Fprintln(r.out, `type "help" for commands`)

	for {
		line, ok := r.prompt("> ")
		if !ok {
			return r.in.Err()
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		// Failures are already reported through the notifier.
		_ = r.handle(ctx, fields[0], fields[1:])
	}
}

func (r *repl) handle(ctx context.Context, name string, args []string) error {
	switch name {
	case "help":
		fmt.Fprintln(r.out, helpText)
	case "signup", "login":
		if len(args) != 2 {
			fmt.Fprintf(r.out, "usage: %s <username> <password>\n", name)
			return nil
		}
		if name == "signup" {
			_, err := r.ctrl.Dispatch(ctx, client.SignupCommand{Username: args[0], Password: args[1]})
			return err
		}
		_, err := r.ctrl.Dispatch(ctx, client.LoginCommand{Username: args[0], Password: args[1]})
		return err
	case "logout":
		_, err := r.ctrl.Dispatch(ctx, client.LogoutCommand{})
		return err
	case "whoami":
		if st := r.ctrl.State(); st.LoggedIn() {
			fmt.Fprintln(r.out, st.CurrentUser)
		} else {
			fmt.Fprintln(r.out, "not logged in")
		}
	case "generate":
		topic, _ := r.prompt("topic: ")
		difficulty, _ := r.prompt("difficulty: ")
		st, err := r.ctrl.Dispatch(ctx, client.GenerateCommand{Topic: topic, Difficulty: difficulty})
		if err != nil {
			return err
		}
		renderQuiz(r.out, st)
	case "author":
		if len(args) != 1 {
			fmt.Fprintln(r.out, "usage: author <file.json>")
			return nil
		}
		title, drafts, err := readAuthoredFile(args[0])
		if err != nil {
			fmt.Fprintf(r.out, "cannot read %s: %v\n", args[0], err)
			return err
		}
		st, err := r.ctrl.Dispatch(ctx, client.SaveManualCommand{Title: title, Drafts: drafts})
		if err != nil {
			return err
		}
		renderQuiz(r.out, st)
	case "show":
		renderQuiz(r.out, r.ctrl.State())
	case "play":
		return r.play(ctx)
	case "reset":
		if _, err := r.ctrl.Dispatch(ctx, client.ResetCommand{}); err != nil {
			fmt.Fprintf(r.out, "reset failed: %v\n", err)
			return err
		}
		fmt.Fprintln(r.out, "quiz cleared")
	default:
		fmt.Fprintf(r.out, "unknown command %q\n", name)
	}
	return nil
}

func (r *repl) play(ctx context.Context) error {
	st, err := r.ctrl.Dispatch(ctx, client.PlayCommand{})
	if err != nil {
		return err
	}
	sub := quiz.NewSubmission()
	fmt.Fprintf(r.out, "%s\n\n", st.Quiz.Title)

	for _, b := range st.Blocks {
		renderBlock(r.out, b)
		answer, ok := r.prompt("your answer: ")
		if !ok {
			break
		}
		answer = strings.TrimSpace(answer)
		if b.Input == quiz.InputText {
			sub.Write(b.Index, answer)
			continue
		}
		if n, err := strconv.Atoi(answer); err == nil {
			sub.Choose(b.Index, n-1)
		}
	}

	st, err = r.ctrl.Dispatch(ctx, client.SubmitCommand{Submission: sub})
	if err != nil {
		return err
	}
	if st.LastResult != nil {
		renderResult(r.out, *st.LastResult)
	}
	return nil
}

func (r *repl) prompt(label string) (string, bool) {
	fmt.Fprint(r.out, label)
	if !r.in.Scan() {
		return "", false
	}
	return r.in.Text(), true
}

// authoredFile is the on-disk format accepted by the author command.
type authoredFile struct {
	Title     string `json:"title"`
	Questions []struct {
		Text       string   `json:"text"`
		LongAnswer bool     `json:"longAnswer"`
		Options    []string `json:"options"`
		Correct    int      `json:"correct"` // 1-based
	} `json:"questions"`
}

func readAuthoredFile(path string) (string, []quiz.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	var f authoredFile
	if err := json.Unmarshal(data, &f); err != nil {
		return "", nil, err
	}
	if len(f.Questions) == 0 {
		return "", nil, errors.New("no questions in file")
	}

	drafts := make([]quiz.Draft, 0, len(f.Questions))
	for _, q := range f.Questions {
		d := quiz.Draft{Text: q.Text, LongAnswer: q.LongAnswer, CorrectOption: q.Correct}
		copy(d.Options[:], q.Options)
		drafts = append(drafts, d)
	}
	return f.Title, drafts, nil
}
