package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds the relay's runtime configuration.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"quiz-relay"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	LogLevel                string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:5000"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	AI   AI
	CORS CORS
}

// AI configures the text-generation provider.
type AI struct {
	Provider     string        `env:"AI_PROVIDER" envDefault:"groq"`
	GroqAPIKey   string        `env:"GROQ_API_KEY"`
	GroqBaseURL  string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	Model        string        `env:"AI_MODEL" envDefault:"llama3-8b-8192"`
	Temperature  float64       `env:"AI_TEMPERATURE" envDefault:"0.7"`
	MaxTokens    int           `env:"AI_MAX_TOKENS" envDefault:"1500"`
	HTTPTimeout  time.Duration `env:"AI_HTTP_TIMEOUT" envDefault:"60s"`
}

// APIKey returns the key for the configured provider.
func (a AI) APIKey() string {
	if a.Provider == "gemini" {
		return a.GeminiAPIKey
	}
	return a.GroqAPIKey
}

// CORS allows browser calls from exactly one origin.
type CORS struct {
	AllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"http://127.0.0.1:8080"`
	MaxAge        int    `env:"CORS_MAX_AGE" envDefault:"300"`
}

// Client configures the terminal quiz client.
type Client struct {
	Name           string        `env:"APP_NAME" envDefault:"quizplay"`
	Env            string        `env:"APP_ENV" envDefault:"development"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"warn"`
	RelayURL       string        `env:"RELAY_URL" envDefault:"http://localhost:5000"`
	RelayTimeout   time.Duration `env:"RELAY_TIMEOUT" envDefault:"90s"`
	StoreDriver    string        `env:"STORE_DRIVER" envDefault:"file"`
	StorePath      string        `env:"STORE_PATH"`
	PasswordScheme string        `env:"PASSWORD_SCHEME" envDefault:"plaintext"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.AI.Provider != "groq" && cfg.AI.Provider != "gemini" {
		return nil, fmt.Errorf("parse config: unsupported AI_PROVIDER %q", cfg.AI.Provider)
	}
	return cfg, nil
}

// LoadClient parses environment variables into Client config.
func LoadClient(ctx context.Context) (*Client, error) {
	cfg := &Client{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse client config: %w", err)
	}
	return cfg, nil
}
