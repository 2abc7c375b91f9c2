package session

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// MigrationLogger adapts zerolog to goose's logger.
type MigrationLogger struct {
	Logger zerolog.Logger
}

func (l MigrationLogger) Printf(format string, v ...interface{}) {
	l.Logger.Info().Msgf(format, v...)
}

func (l MigrationLogger) Fatalf(format string, v ...interface{}) {
	l.Logger.Fatal().Msgf(format, v...)
}

// Migrate runs a goose command ("up", "down" or "status") against the session schema.
func Migrate(ctx context.Context, db *sql.DB, command string, logger goose.Logger) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetTableName("goose_db_version")
	if logger == nil {
		logger = goose.NopLogger()
	}
	goose.SetLogger(logger)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.UpContext(ctx, db, migrationsDir)
	case "down":
		return goose.DownContext(ctx, db, migrationsDir)
	case "status":
		return goose.StatusContext(ctx, db, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
}
