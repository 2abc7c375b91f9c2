package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/quiz-relay/internal/session"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, or status")
		dbPath  = flag.String("db", getEnv("STORE_PATH", "./data/quiz-session.db"), "Path to the sqlite session store")
	)
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	ctx := context.Background()
	db, err := session.OpenSQLite(ctx, *dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", *dbPath).Msg("failed to open session store")
	}
	defer db.Close()

	log.Info().Str("db", *dbPath).Str("command", *command).Msg("opened session store")

	if err := session.Migrate(ctx, db, *command, session.MigrationLogger{Logger: log.Logger}); err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("migration failed")
	}
	log.Info().Str("command", *command).Msg("migration command completed")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
