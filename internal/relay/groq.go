package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama3-8b-8192"
	defaultGroqTimeout = time.Minute
)

// GroqClient calls an OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	httpClient     *http.Client
	config         GeneratorConfig
	logger         zerolog.Logger
	completionsURL string
}

func NewGroqClient(cfg GeneratorConfig, logger zerolog.Logger) *GroqClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGroqTimeout
	}
	if cfg.Model == "" {
		cfg.Model = defaultGroqModel
	}
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = defaultGroqBaseURL
	}

	return &GroqClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config:         cfg,
		logger:         logger.With().Str("component", "groq_client").Logger(),
		completionsURL: base + "/chat/completions",
	}
}

func (c *GroqClient) Name() string { return ProviderGroq }

// Generate performs a single chat completion with one user message.
func (c *GroqClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model:       c.config.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.completionsURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Debug().Int("status", resp.StatusCode).Str("model", c.config.Model).Msg("completion request rejected")
		return "", fmt.Errorf("%d %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode completion payload: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}
