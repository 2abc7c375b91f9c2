package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/gokatarajesh/quiz-relay/internal/client"
	"github.com/gokatarajesh/quiz-relay/internal/config"
	"github.com/gokatarajesh/quiz-relay/internal/logging"
	"github.com/gokatarajesh/quiz-relay/internal/session"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load("configs/.env")
	}

	ctx := context.Background()
	cfg, err := config.LoadClient(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := logging.NewWithWriter(os.Stderr, cfg.Name, cfg.Env, cfg.LogLevel)

	kv, err := session.Open(ctx, cfg.StoreDriver, cfg.StorePath)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open session store")
	}
	defer kv.Close()

	hasher, err := session.NewHasher(cfg.PasswordScheme)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid password scheme")
	}

	ctrl := client.NewController(
		client.NewRelayClient(cfg.RelayURL, cfg.RelayTimeout, logger),
		session.NewQuizStore(kv),
		session.NewAuth(session.NewCredentialStore(kv, hasher), kv, logger),
		client.NewWriterNotifier(os.Stdout),
		logger,
	)

	r := newREPL(ctrl, os.Stdin, os.Stdout)
	if err := r.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("quizplay stopped")
	}
}
