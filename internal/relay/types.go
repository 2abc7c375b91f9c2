package relay

import (
	"encoding/json"
	"errors"
	"fmt"
)

// QuestionCount is how many questions the model is asked for per generation.
const QuestionCount = 5

var (
	ErrMissingInput = errors.New("missing topic or difficulty in request body")
	ErrInvalidShape = errors.New("invalid AI response: expected a non-empty array")
)

// Request is the relay input. Both fields are required.
type Request struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

// Validate rejects requests missing either field.
func (r Request) Validate() error {
	if r.Topic == "" || r.Difficulty == "" {
		return ErrMissingInput
	}
	return nil
}

// GeneratedQuestion is the normalized item returned to clients.
// Correct is the position of the model's answer within Options, or -1 when it is absent.
// Options is nil when the model sent no options array.
type GeneratedQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

// MarshalJSON leaves out the options key when there was no options array, so clients
// never see options as null. An empty array is kept.
func (q GeneratedQuestion) MarshalJSON() ([]byte, error) {
	if q.Options == nil {
		return json.Marshal(struct {
			Question string `json:"question"`
			Correct  int    `json:"correct"`
		}{q.Question, q.Correct})
	}
	type plain GeneratedQuestion
	return json.Marshal(plain(q))
}

// UpstreamError wraps a failed call to the generation API.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError reports a model reply that could not be decoded as JSON, even after
// stripping code fences.
type ParseError struct {
	Raw         string
	DirectErr   error
	StrippedErr error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid AI response, could not parse JSON: %v", e.StrippedErr)
}
