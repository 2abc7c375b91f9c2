package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-relay/internal/config"
	"github.com/gokatarajesh/quiz-relay/internal/logging"
	"github.com/gokatarajesh/quiz-relay/internal/relay"
	"github.com/gokatarajesh/quiz-relay/internal/server"
)

// Application aggregates the relay's runtime pieces.
type Application struct {
	cfg    *config.App
	logger zerolog.Logger
	http   *http.Server
}

// New bootstraps logger, metrics registry, generation client and HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env, cfg.LogLevel)
	logger.Info().Msg("starting application bootstrap")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if cfg.AI.APIKey() == "" {
		logger.Warn().Str("provider", cfg.AI.Provider).Msg("no API key configured; generation calls will fail upstream")
	}

	generator, err := relay.NewGenerator(ctx, relay.GeneratorConfig{
		Provider:    cfg.AI.Provider,
		APIKey:      cfg.AI.APIKey(),
		BaseURL:     cfg.AI.GroqBaseURL,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
		Timeout:     cfg.AI.HTTPTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("build generator: %w", err)
	}
	logger.Info().Str("provider", generator.Name()).Msg("generation client initialized")

	service := relay.NewService(generator, relay.NewMetrics(registry), logger)
	handler := relay.NewHandler(service, logger)

	return &Application{
		cfg:    cfg,
		logger: logger,
		http:   server.NewHTTPServer(cfg, logger, registry, handler),
	}, nil
}

// Run starts the HTTP server and shuts it down gracefully once ctx is done. Callers bind
// ctx to termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Str("cors_origin", a.cfg.CORS.AllowedOrigin).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Info().Err(context.Cause(ctx)).Msg("shutdown requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
