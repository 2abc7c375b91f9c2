package client

import (
	"context"
	"fmt"

	"github.com/gokatarajesh/quiz-relay/internal/quiz"
)

// Command is a user action routed through Dispatch.
type Command interface {
	command()
}

type (
	LoadSavedCommand struct{}

	GenerateCommand struct {
		Topic      string
		Difficulty string
	}

	SaveManualCommand struct {
		Title  string
		Drafts []quiz.Draft
	}

	PlayCommand struct{}

	SubmitCommand struct {
		Submission quiz.Submission
	}

	ResetCommand struct{}

	SignupCommand struct {
		Username string
		Password string
	}

	LoginCommand struct {
		Username string
		Password string
	}

	LogoutCommand struct{}
)

func (LoadSavedCommand) command()  {}
func (GenerateCommand) command()   {}
func (SaveManualCommand) command() {}
func (PlayCommand) command()       {}
func (SubmitCommand) command()     {}
func (ResetCommand) command()      {}
func (SignupCommand) command()     {}
func (LoginCommand) command()      {}
func (LogoutCommand) command()     {}

// Dispatch runs cmd and returns the resulting state.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) (State, error) {
	var err error
	switch cmd := cmd.(type) {
	case LoadSavedCommand:
		_, err = c.LoadSaved(ctx)
	case GenerateCommand:
		err = c.Generate(ctx, cmd.Topic, cmd.Difficulty)
	case SaveManualCommand:
		err = c.SaveManual(ctx, cmd.Title, cmd.Drafts)
	case PlayCommand:
		err = c.Play()
	case SubmitCommand:
		_, err = c.Submit(cmd.Submission)
	case ResetCommand:
		err = c.Reset(ctx)
	case SignupCommand:
		err = c.Signup(ctx, cmd.Username, cmd.Password)
	case LoginCommand:
		err = c.Login(ctx, cmd.Username, cmd.Password)
	case LogoutCommand:
		err = c.Logout(ctx)
	default:
		err = fmt.Errorf("unknown command %T", cmd)
	}
	return c.State(), err
}
