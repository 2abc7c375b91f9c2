package relay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiClient generates text through the Gemini API.
type GeminiClient struct {
	client *genai.Client
	config GeneratorConfig
	logger zerolog.Logger
}

func NewGeminiClient(ctx context.Context, cfg GeneratorConfig, logger zerolog.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key not configured")
	}
	if cfg.Model == "" || cfg.Model == defaultGroqModel {
		cfg.Model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: cfg,
		logger: logger.With().Str("component", "gemini_client").Logger(),
	}, nil
}

func (c *GeminiClient) Name() string { return ProviderGemini }

// Generate sends prompt as a single user-role content and returns the reply text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.Model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(c.config.Temperature)),
			MaxOutputTokens: int32(c.config.MaxTokens),
		},
	)
	if err != nil {
		return "", err
	}

	raw := strings.TrimSpace(result.Text())
	if raw == "" {
		c.logger.Debug().Str("model", c.config.Model).Msg("gemini returned no text")
		return "", errors.New("empty response from model")
	}
	return raw, nil
}
