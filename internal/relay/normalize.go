package relay

import (
	"bytes"
	"encoding/json"
)

type rawItem struct {
	Question json.RawMessage `json:"question"`
	Options  json.RawMessage `json:"options"`
	Answer   json.RawMessage `json:"answer"`
}

// Normalize checks that value is a non-empty JSON array and maps every element to a
// GeneratedQuestion in order. Elements are not validated individually.
func Normalize(value json.RawMessage) ([]GeneratedQuestion, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(value, &items); err != nil || len(items) == 0 {
		return nil, ErrInvalidShape
	}

	out := make([]GeneratedQuestion, 0, len(items))
	for _, item := range items {
		out = append(out, normalizeItem(item))
	}
	return out, nil
}

func normalizeItem(data json.RawMessage) GeneratedQuestion {
	q := GeneratedQuestion{Correct: -1}

	var item rawItem
	if err := json.Unmarshal(data, &item); err != nil {
		return q
	}
	q.Question = text(item.Question)

	var options []json.RawMessage
	if isNull(item.Options) || json.Unmarshal(item.Options, &options) != nil {
		return q
	}

	q.Options = make([]string, len(options))
	answer, hasAnswer := scalar(item.Answer)
	for i, opt := range options {
		q.Options[i] = text(opt)
		if !hasAnswer || q.Correct >= 0 {
			continue
		}
		if v, ok := scalar(opt); ok && sameScalar(v, answer) {
			q.Correct = i
		}
	}
	return q
}

// text returns a JSON string's value, or the raw JSON for any other non-null value.
func text(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// scalar decodes raw into a comparable value. Objects and arrays never match anything.
func scalar(raw json.RawMessage) (any, bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	switch v.(type) {
	case string, float64, bool, nil:
		return v, true
	}
	return nil, false
}

func sameScalar(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return false
}
