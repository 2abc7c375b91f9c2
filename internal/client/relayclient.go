package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrGenerationFailed covers transport errors and non-2xx relay responses.
	ErrGenerationFailed = errors.New("failed to generate quiz")
	// ErrInvalidPayload means the relay answered 2xx with something other than a non-empty array.
	ErrInvalidPayload = errors.New("relay returned invalid quiz data")
)

const (
	defaultRelayURL     = "http://localhost:5000"
	defaultRelayTimeout = 90 * time.Second
	generatePath        = "/generate-quiz"
)

// GeneratedItem is one element of the relay's reply. Answer is read when a relay sends the
// answer text instead of (or alongside) the index.
type GeneratedItem struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  *int     `json:"correct"`
	Answer   *string  `json:"answer,omitempty"`
}

// QuizGenerator fetches generated questions for a topic and difficulty.
type QuizGenerator interface {
	Generate(ctx context.Context, topic, difficulty string) ([]GeneratedItem, error)
}

// RelayClient calls the generation relay over HTTP.
type RelayClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ QuizGenerator = (*RelayClient)(nil)

func NewRelayClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *RelayClient {
	if baseURL == "" {
		baseURL = defaultRelayURL
	}
	if timeout == 0 {
		timeout = defaultRelayTimeout
	}
	return &RelayClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("component", "relay_client").Logger(),
	}
}

func (c *RelayClient) Generate(ctx context.Context, topic, difficulty string) ([]GeneratedItem, error) {
	body, err := json.Marshal(map[string]string{
		"topic":      topic,
		"difficulty": difficulty,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrGenerationFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("body", snippet(payload)).
			Msg("relay returned an error")
		return nil, fmt.Errorf("%w: status %d", ErrGenerationFailed, resp.StatusCode)
	}

	var items []GeneratedItem
	if err := json.Unmarshal(payload, &items); err != nil {
		c.logger.Warn().Err(err).Str("body", snippet(payload)).Msg("invalid relay payload")
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if len(items) == 0 {
		return nil, ErrInvalidPayload
	}
	return items, nil
}

func snippet(b []byte) string {
	const limit = 512
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
