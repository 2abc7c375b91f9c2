package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Provider names accepted by NewGenerator.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Generator sends one prompt to a text-generation API and returns the reply text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// GeneratorConfig holds connection and sampling details for the generation API.
type GeneratorConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// NewGenerator builds the client for cfg.Provider.
func NewGenerator(ctx context.Context, cfg GeneratorConfig, logger zerolog.Logger) (Generator, error) {
	switch cfg.Provider {
	case ProviderGroq, "":
		return NewGroqClient(cfg, logger), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
