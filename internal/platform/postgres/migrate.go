package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jrescalona/rainalert/internal/platform/logger"
	"github.com/pressly/goose/v3"
)

// MigrationsTable is the goose version table.
const MigrationsTable = "schema_migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationCommands lists the goose commands that work against the embedded
// migrations. "create" and "fix" write files and are not offered.
var migrationCommands = map[string]bool{
	"up":        true,
	"up-by-one": true,
	"down":      true,
	"redo":      true,
	"reset":     true,
	"status":    true,
	"version":   true,
}

// Migrate runs a goose command against db using the embedded migrations.
func Migrate(ctx context.Context, db *sql.DB, command string, args ...string) error {
	if !migrationCommands[command] {
		return fmt.Errorf("unsupported migration command %q", command)
	}

	log := logger.FromContext(ctx).With(
		slog.String("component", "migrations"),
		slog.String("command", command),
	)

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(&slogGooseLogger{logger: log})
	goose.SetTableName(MigrationsTable)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	log.Info("running migrations")
	if err := goose.RunContext(ctx, command, db, "migrations", args...); err != nil {
		log.Error("migration failed", slog.String("error", err.Error()))
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	log.Info("migrations finished")
	return nil
}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level. It does not exit; goose also returns the error
// to Migrate, which hands it back to the caller.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
