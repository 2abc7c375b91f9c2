package relay

import (
	"encoding/json"
	"strings"
)

// ParseStage records which step of the parse policy produced the outcome.
type ParseStage string

const (
	StageDirect   ParseStage = "direct"
	StageStripped ParseStage = "stripped"
	StageFailed   ParseStage = "failed"
)

// ParseOutcome is the tagged result of ParseReply: a decoded JSON value on success,
// or a *ParseError with both decode errors and the raw text on failure.
type ParseOutcome struct {
	Stage ParseStage
	Value json.RawMessage
	Err   *ParseError
}

// OK reports whether either parse attempt succeeded.
func (o ParseOutcome) OK() bool {
	return o.Err == nil
}

// ParseReply decodes the model's reply as JSON, retrying once with code fences removed.
func ParseReply(raw string) ParseOutcome {
	value, directErr := decodeJSON(raw)
	if directErr == nil {
		return ParseOutcome{Stage: StageDirect, Value: value}
	}

	value, strippedErr := decodeJSON(StripFences(raw))
	if strippedErr == nil {
		return ParseOutcome{Stage: StageStripped, Value: value}
	}

	return ParseOutcome{
		Stage: StageFailed,
		Err: &ParseError{
			Raw:         raw,
			DirectErr:   directErr,
			StrippedErr: strippedErr,
		},
	}
}

// StripFences removes ```json and ``` markers wherever they occur.
func StripFences(raw string) string {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}

func decodeJSON(text string) (json.RawMessage, error) {
	var value json.RawMessage
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, err
	}
	return value, nil
}
