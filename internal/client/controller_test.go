package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/quiz-relay/internal/quiz"
	"github.com/gokatarajesh/quiz-relay/internal/session"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(level Level, message string) {
	m.Called(level, message)
}

// fakeRelay serves a fixed status and body on /generate-quiz and records requests.
type fakeRelay struct {
	mu       sync.Mutex
	status   int
	body     string
	requests []map[string]string
}

func (f *fakeRelay) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	f.requests = append(f.requests, req)
	status, body := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (f *fakeRelay) Requests() []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]string(nil), f.requests...)
}

func (f *fakeRelay) RequestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type controllerFixture struct {
	ctrl     *Controller
	relay    *fakeRelay
	notifier *mockNotifier
	kv       *session.MemoryKV
	quizzes  *session.QuizStore
}

func newFixture(t *testing.T, status int, body string) *controllerFixture {
	t.Helper()
	relay := &fakeRelay{status: status, body: body}
	srv := httptest.NewServer(relay)
	t.Cleanup(srv.Close)

	kv := session.NewMemoryKV()
	quizzes := session.NewQuizStore(kv)
	auth := session.NewAuth(session.NewCredentialStore(kv, nil), kv, zerolog.Nop())
	notifier := &mockNotifier{}
	notifier.On("Notify", mock.Anything, mock.Anything).Return()

	ctrl := NewController(NewRelayClient(srv.URL, 5*time.Second, zerolog.Nop()), quizzes, auth, notifier, zerolog.Nop())
	return &controllerFixture{ctrl: ctrl, relay: relay, notifier: notifier, kv: kv, quizzes: quizzes}
}

const sevenItems = `[
	{"question":"Q1","options":["a","b","c","d"],"correct":1},
	{"question":"Q2","options":["a","b","c","d"],"correct":-1},
	{"question":"Q3","options":null,"correct":-1},
	{"question":"Q4","options":["a","b","c","d"],"correct":3},
	{"question":"Q5","options":["a","b","c","d"],"correct":0},
	{"question":"Q6","options":["a","b","c","d"],"correct":0},
	{"question":"Q7","options":["a","b","c","d"],"correct":0}
]`

func TestController_GenerateBuildsAndPersistsQuiz(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, http.StatusOK, sevenItems)

	require.NoError(t, f.ctrl.Generate(ctx, "  Go ", " easy "))

	st := f.ctrl.State()
	assert.Equal(t, ViewPlayer, st.View)
	assert.Equal(t, "Go (easy) Quiz", st.Quiz.Title)
	require.Len(t, st.Quiz.Questions, 5)
	assert.Equal(t, []string{"Q1", "Q2", "Q3", "Q4", "Q5"}, questionTexts(st.Quiz))
	assert.Equal(t, 1, st.Quiz.Questions[0].CorrectIndex())
	assert.Equal(t, 0, st.Quiz.Questions[1].CorrectIndex())
	assert.True(t, st.Quiz.Questions[2].LongAnswer)
	assert.Len(t, st.Blocks, 5)

	reqs := f.relay.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, map[string]string{"topic": "Go", "difficulty": "easy"}, reqs[0])

	saved, ok, err := f.quizzes.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, st.Quiz, saved)

	f.notifier.AssertCalled(t, "Notify", LevelSuccess, NoticeGenerated)
}

func TestController_GenerateRequiresTopicAndDifficulty(t *testing.T) {
	f := newFixture(t, http.StatusOK, sevenItems)

	err := f.ctrl.Generate(context.Background(), "   ", "easy")
	assert.ErrorIs(t, err, ErrMissingTopic)
	assert.Zero(t, f.relay.RequestCount())
	f.notifier.AssertCalled(t, "Notify", LevelWarning, NoticeMissingTopic)
}

func TestController_GenerateFailuresKeepPriorQuiz(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		notice string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"Failed to generate quiz"}`, ErrGenerationFailed, NoticeGenerationFailed},
		{"empty array", http.StatusOK, `[]`, ErrInvalidPayload, NoticeInvalidAIData},
		{"not an array", http.StatusOK, `{"question":"x"}`, ErrInvalidPayload, NoticeInvalidAIData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, tt.status, tt.body)
			prior := quiz.Quiz{Title: "Prior", Questions: []quiz.Question{quiz.NewLongAnswer("keep me")}}
			require.NoError(t, f.ctrl.SaveManual(ctx, prior.Title, []quiz.Draft{{Text: "keep me", LongAnswer: true}}))

			err := f.ctrl.Generate(ctx, "Go", "easy")
			assert.ErrorIs(t, err, tt.want)
			f.notifier.AssertCalled(t, "Notify", LevelError, tt.notice)

			assert.Equal(t, prior, f.ctrl.State().Quiz)
			saved, ok, err := f.quizzes.Load(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, prior, saved)
		})
	}
}

func TestController_SaveManualDropsInvalidRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, http.StatusOK, sevenItems)

	drafts := []quiz.Draft{
		{Text: "Valid", Options: [4]string{"a", "b", "c", "d"}, CorrectOption: 2},
		{Text: "Out of range", Options: [4]string{"a", "b", "c", "d"}, CorrectOption: 5},
		{Text: "Essay", LongAnswer: true},
	}
	require.NoError(t, f.ctrl.SaveManual(ctx, "Mine", drafts))

	st := f.ctrl.State()
	assert.Equal(t, ViewPlayer, st.View)
	assert.Equal(t, []string{"Valid", "Essay"}, questionTexts(st.Quiz))

	err := f.ctrl.SaveManual(ctx, "", drafts)
	assert.ErrorIs(t, err, quiz.ErrInvalidQuiz)
	f.notifier.AssertCalled(t, "Notify", LevelWarning, NoticeInvalidQuiz)
}

func TestController_SubmitGradesAndShowsResults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, http.StatusOK, sevenItems)
	require.NoError(t, f.ctrl.Generate(ctx, "Go", "easy"))

	sub := quiz.NewSubmission()
	sub.Choose(0, 1) // correct
	sub.Choose(1, 3) // wrong
	sub.Write(2, "free text")
	sub.Choose(3, 3) // correct

	res, err := f.ctrl.Submit(sub)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, "Not Answered", res.Items[4].UserAnswer)

	st := f.ctrl.State()
	assert.Equal(t, ViewResults, st.View)
	require.NotNil(t, st.LastResult)
	assert.Equal(t, res, *st.LastResult)
}

func TestController_SubmitGradesEachAttemptOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, http.StatusOK, sevenItems)
	require.NoError(t, f.ctrl.Generate(ctx, "Go", "easy"))

	first := quiz.NewSubmission()
	first.Choose(0, 1)
	res, err := f.ctrl.Submit(first)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Score)

	again := quiz.NewSubmission()
	again.Choose(0, 1)
	again.Choose(3, 3)
	_, err = f.ctrl.Submit(again)
	assert.ErrorIs(t, err, ErrNotPlaying)
	st := f.ctrl.State()
	require.NotNil(t, st.LastResult)
	assert.Equal(t, 1, st.LastResult.Score)

	st, err = f.ctrl.Dispatch(ctx, PlayCommand{})
	require.NoError(t, err)
	assert.Equal(t, ViewPlayer, st.View)
	assert.Nil(t, st.LastResult)

	res, err = f.ctrl.Submit(again)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Score)
}

func TestController_PlayWithoutQuiz(t *testing.T) {
	f := newFixture(t, http.StatusOK, sevenItems)
	assert.ErrorIs(t, f.ctrl.Play(), ErrNoQuiz)
	f.notifier.AssertCalled(t, "Notify", LevelWarning, NoticeNoQuiz)
}

func TestController_SubmitWithoutQuiz(t *testing.T) {
	f := newFixture(t, http.StatusOK, sevenItems)
	_, err := f.ctrl.Submit(quiz.NewSubmission())
	assert.ErrorIs(t, err, ErrNoQuiz)
}

func TestController_LoadSavedAndReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, http.StatusOK, sevenItems)
	require.NoError(t, f.ctrl.Generate(ctx, "Go", "easy"))

	// a fresh controller over the same store picks the quiz up
	restarted := NewController(NewRelayClient("http://unused", time.Second, zerolog.Nop()),
		f.quizzes, session.NewAuth(session.NewCredentialStore(f.kv, nil), f.kv, zerolog.Nop()),
		f.notifier, zerolog.Nop())
	loaded, err := restarted.LoadSaved(ctx)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, ViewPlayer, restarted.State().View)
	assert.Equal(t, f.ctrl.State().Quiz, restarted.State().Quiz)
	f.notifier.AssertCalled(t, "Notify", LevelInfo, NoticeSavedLoaded)

	require.NoError(t, restarted.Reset(ctx))
	st := restarted.State()
	assert.Equal(t, ViewMaker, st.View)
	assert.False(t, st.Quiz.Playable())

	_, ok, err := f.quizzes.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	loaded, err = restarted.LoadSaved(ctx)
	require.NoError(t, err)
	assert.False(t, loaded)
}

func TestController_AuthFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, http.StatusOK, sevenItems)

	require.NoError(t, f.ctrl.Signup(ctx, "alice", "pw"))
	assert.ErrorIs(t, f.ctrl.Signup(ctx, "alice", "pw"), session.ErrUsernameTaken)
	assert.ErrorIs(t, f.ctrl.Login(ctx, "alice", "bad"), session.ErrInvalidCredentials)
	assert.False(t, f.ctrl.State().LoggedIn())

	st, err := f.ctrl.Dispatch(ctx, LoginCommand{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", st.CurrentUser)

	st, err = f.ctrl.Dispatch(ctx, LogoutCommand{})
	require.NoError(t, err)
	assert.False(t, st.LoggedIn())

	f.notifier.AssertCalled(t, "Notify", LevelSuccess, NoticeSignedUp)
	f.notifier.AssertCalled(t, "Notify", LevelWarning, NoticeUsernameTaken)
	f.notifier.AssertCalled(t, "Notify", LevelError, NoticeInvalidCredential)
	f.notifier.AssertCalled(t, "Notify", LevelSuccess, NoticeLoggedIn)
}

func TestController_DispatchGenerate(t *testing.T) {
	f := newFixture(t, http.StatusOK, sevenItems)

	st, err := f.ctrl.Dispatch(context.Background(), GenerateCommand{Topic: "Go", Difficulty: "hard"})
	require.NoError(t, err)
	assert.Equal(t, "Go (hard) Quiz", st.Quiz.Title)
	assert.Equal(t, 1, f.relay.RequestCount())
}

func questionTexts(q quiz.Quiz) []string {
	out := make([]string, 0, len(q.Questions))
	for _, question := range q.Questions {
		out = append(out, question.Question)
	}
	return out
}
