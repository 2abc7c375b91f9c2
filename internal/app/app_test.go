package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/quiz-relay/internal/config"
)

func testConfig() *config.App {
	return &config.App{
		Name:                    "quiz-relay-test",
		Env:                     "test",
		LogLevel:                "disabled",
		HTTPAddr:                "127.0.0.1:0",
		GracefulShutdownTimeout: time.Second,
		AI:                      config.AI{Provider: "groq", Model: "llama3-8b-8192", Temperature: 0.7, MaxTokens: 1500},
		CORS:                    config.CORS{AllowedOrigin: "http://127.0.0.1:8080"},
	}
}

func TestRunStopsWhenContextIsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	instance, err := New(ctx, testConfig())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- instance.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewRejectsGeminiWithoutKey(t *testing.T) {
	cfg := testConfig()
	cfg.AI.Provider = "gemini"

	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}
