package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/quiz-relay/internal/app"
	"github.com/gokatarajesh/quiz-relay/internal/config"
)

const envFile = "configs/.env"

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "quiz-relay").Logger()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("file", envFile).Msg("could not load env file")
		}
	}

	// SIGINT/SIGTERM cancel ctx; the relay then drains in-flight generations.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid relay configuration")
	}

	relay, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.AI.Provider).Msg("relay bootstrap failed")
	}

	if err := relay.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("relay stopped")
	}
}
