package client

import "github.com/gokatarajesh/quiz-relay/internal/quiz"

// View is the screen the client is on.
type View string

const (
	ViewMaker   View = "maker"
	ViewPlayer  View = "player"
	ViewResults View = "results"
)

// State is the client's application state. Controller hands out copies.
type State struct {
	View        View
	Quiz        quiz.Quiz
	Blocks      []quiz.Block
	LastResult  *quiz.Result
	CurrentUser string
}

// LoggedIn reports whether a current-user marker is set.
func (s State) LoggedIn() bool {
	return s.CurrentUser != ""
}

func initialState() State {
	return State{View: ViewMaker}
}
