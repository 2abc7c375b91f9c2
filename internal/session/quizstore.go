package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gokatarajesh/quiz-relay/internal/quiz"
)

// QuizStore persists the single current quiz.
type QuizStore struct {
	kv KV
}

func NewQuizStore(kv KV) *QuizStore {
	return &QuizStore{kv: kv}
}

// Save overwrites the stored quiz.
func (s *QuizStore) Save(ctx context.Context, q quiz.Quiz) error {
	data, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, quizKey, string(data))
}

// Load returns the stored quiz; ok is false when nothing has been saved.
func (s *QuizStore) Load(ctx context.Context) (quiz.Quiz, bool, error) {
	raw, ok, err := s.kv.Get(ctx, quizKey)
	if err != nil || !ok || raw == "" {
		return quiz.Quiz{}, false, err
	}
	var q quiz.Quiz
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		return quiz.Quiz{}, false, fmt.Errorf("decode saved quiz: %w", err)
	}
	return q, true, nil
}

// Clear deletes the stored quiz.
func (s *QuizStore) Clear(ctx context.Context) error {
	return s.kv.Remove(ctx, quizKey)
}
