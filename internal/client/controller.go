package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-relay/internal/quiz"
	"github.com/gokatarajesh/quiz-relay/internal/session"
)

var (
	ErrMissingTopic = errors.New("topic and difficulty are required")
	ErrNoQuiz       = errors.New("no playable quiz")
	// ErrNotPlaying is returned by Submit outside the player view, e.g. a second submit
	// of the same attempt.
	ErrNotPlaying   = errors.New("quiz is not being played")
)

// QuizRepository persists the current quiz.
type QuizRepository interface {
	Save(ctx context.Context, q quiz.Quiz) error
	Load(ctx context.Context) (quiz.Quiz, bool, error)
	Clear(ctx context.Context) error
}

// Authenticator is the client's signup/login capability.
type Authenticator interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (string, bool, error)
}

// Controller owns the client State and applies user commands to it.
type Controller struct {
	generator QuizGenerator
	quizzes   QuizRepository
	auth      Authenticator
	notifier  Notifier
	logger    zerolog.Logger

	mu    sync.Mutex
	state State
}

func NewController(generator QuizGenerator, quizzes QuizRepository, auth Authenticator, notifier Notifier, logger zerolog.Logger) *Controller {
	return &Controller{
		generator: generator,
		quizzes:   quizzes,
		auth:      auth,
		notifier:  notifier,
		logger:    logger.With().Str("component", "controller").Logger(),
		state:     initialState(),
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LoadSaved restores the persisted quiz and current user. With a saved quiz the player
// view is entered directly.
func (c *Controller) LoadSaved(ctx context.Context) (bool, error) {
	user, ok, err := c.auth.CurrentUser(ctx)
	if err != nil {
		return false, fmt.Errorf("load current user: %w", err)
	}

	c.mu.Lock()
	if ok {
		c.state.CurrentUser = user
	}
	c.mu.Unlock()

	saved, ok, err := c.quizzes.Load(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	c.startQuiz(saved)
	c.notifier.Notify(LevelInfo, NoticeSavedLoaded)
	return true, nil
}

// Generate asks the relay for questions and replaces the current quiz with them. On any
// failure the previous quiz is left untouched.
func (c *Controller) Generate(ctx context.Context, topic, difficulty string) error {
	topic = strings.TrimSpace(topic)
	difficulty = strings.TrimSpace(difficulty)
	if topic == "" || difficulty == "" {
		c.notifier.Notify(LevelWarning, NoticeMissingTopic)
		return ErrMissingTopic
	}

	items, err := c.generator.Generate(ctx, topic, difficulty)
	switch {
	case errors.Is(err, ErrInvalidPayload):
		c.notifier.Notify(LevelError, NoticeInvalidAIData)
		return err
	case err != nil:
		c.logger.Warn().Err(err).Str("topic", topic).Msg("quiz generation failed")
		c.notifier.Notify(LevelError, NoticeGenerationFailed)
		return err
	}

	q := quiz.Quiz{
		Title:     GeneratedTitle(topic, difficulty),
		Questions: MapGenerated(items),
	}
	if err := c.quizzes.Save(ctx, q); err != nil {
		c.notifier.Notify(LevelError, NoticeGenerationFailed)
		return fmt.Errorf("save generated quiz: %w", err)
	}

	c.startQuiz(q)
	c.notifier.Notify(LevelSuccess, NoticeGenerated)
	c.logger.Debug().Str("topic", topic).Int("questions", len(q.Questions)).Msg("quiz generated")
	return nil
}

// SaveManual builds a quiz from authored rows, persists it and enters the player.
func (c *Controller) SaveManual(ctx context.Context, title string, drafts []quiz.Draft) error {
	q, err := quiz.BuildQuiz(title, drafts)
	if err != nil {
		c.notifier.Notify(LevelWarning, NoticeInvalidQuiz)
		return err
	}
	if err := c.quizzes.Save(ctx, q); err != nil {
		return fmt.Errorf("save quiz: %w", err)
	}

	c.startQuiz(q)
	c.notifier.Notify(LevelSuccess, NoticeQuizSaved)
	return nil
}

// Play starts a fresh attempt at the current quiz.
func (c *Controller) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Quiz.Playable() {
		c.notifier.Notify(LevelWarning, NoticeNoQuiz)
		return ErrNoQuiz
	}
	c.state.LastResult = nil
	c.state.View = ViewPlayer
	return nil
}

// Submit grades the submission against the current quiz and shows the results view.
// Each attempt is graded once; Play starts another.
func (c *Controller) Submit(sub quiz.Submission) (quiz.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Quiz.Playable() {
		c.notifier.Notify(LevelWarning, NoticeNoQuiz)
		return quiz.Result{}, ErrNoQuiz
	}
	if c.state.View != ViewPlayer {
		return quiz.Result{}, ErrNotPlaying
	}
	res := quiz.Grade(c.state.Quiz, sub)
	c.state.LastResult = &res
	c.state.View = ViewResults
	return res, nil
}

// Reset deletes the persisted quiz and returns to an empty maker view.
func (c *Controller) Reset(ctx context.Context) error {
	if err := c.quizzes.Clear(ctx); err != nil {
		return fmt.Errorf("clear quiz: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	user := c.state.CurrentUser
	c.state = initialState()
	c.state.CurrentUser = user
	return nil
}

func (c *Controller) Signup(ctx context.Context, username, password string) error {
	err := c.auth.Signup(ctx, username, password)
	switch {
	case errors.Is(err, session.ErrMissingFields):
		c.notifier.Notify(LevelWarning, NoticeMissingFields)
	case errors.Is(err, session.ErrUsernameTaken):
		c.notifier.Notify(LevelWarning, NoticeUsernameTaken)
	case err == nil:
		c.notifier.Notify(LevelSuccess, NoticeSignedUp)
	}
	return err
}

func (c *Controller) Login(ctx context.Context, username, password string) error {
	if err := c.auth.Login(ctx, username, password); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			c.notifier.Notify(LevelError, NoticeInvalidCredential)
		}
		return err
	}

	c.mu.Lock()
	c.state.CurrentUser = strings.TrimSpace(username)
	c.mu.Unlock()
	c.notifier.Notify(LevelSuccess, NoticeLoggedIn)
	return nil
}

func (c *Controller) Logout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	c.state.CurrentUser = ""
	c.mu.Unlock()
	c.notifier.Notify(LevelInfo, NoticeLoggedOut)
	return nil
}

func (c *Controller) startQuiz(q quiz.Quiz) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Quiz = q
	c.state.Blocks = quiz.Blocks(q)
	c.state.LastResult = nil
	c.state.View = ViewPlayer
}
