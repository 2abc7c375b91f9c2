package client

import (
	"fmt"
	"io"
	"sync"
)

// Level classifies a notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier shows short user-facing messages.
type Notifier interface {
	Notify(level Level, message string)
}

// Notices shown to the user.
const (
	NoticeSavedLoaded       = "A saved quiz was loaded. You can play it directly!"
	NoticeMissingTopic      = "Please enter a topic and difficulty!"
	NoticeInvalidAIData     = "Failed to generate quiz. AI returned invalid data."
	NoticeGenerated         = "AI Quiz generated successfully!"
	NoticeGenerationFailed  = "Failed to generate quiz. Check backend/server."
	NoticeInvalidQuiz       = "Please enter a title and at least one valid question!"
	NoticeQuizSaved         = "Quiz saved successfully! Now play it."
	NoticeMissingFields     = "Please fill all fields."
	NoticeUsernameTaken     = "Username already exists!"
	NoticeSignedUp          = "Signup successful! Please login."
	NoticeLoggedIn          = "Login successful!"
	NoticeInvalidCredential = "Invalid username or password."
	NoticeLoggedOut         = "Logged out."
	NoticeNoQuiz            = "There is no quiz to play yet."
)

// WriterNotifier prints notices as "[level] message" lines.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(level Level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "[%s] %s\n", level, message)
}
