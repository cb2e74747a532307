package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/jrescalona/rainalert/internal/config"
	"github.com/jrescalona/rainalert/internal/platform/memory"
	"github.com/jrescalona/rainalert/internal/platform/postgres"
	"github.com/jrescalona/rainalert/internal/redact"
	"github.com/jrescalona/rainalert/internal/service"
	"github.com/jrescalona/rainalert/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// errDatabaseRequired is returned by commands that need PostgreSQL when no
// database is configured.
var errDatabaseRequired = errors.New("this command requires a database (set RAINALERT_DATABASE_URL)")

// application holds the dependencies shared by every command.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	db       *sql.DB
	projects service.ProjectService
}

// newApplication opens the database when one is configured and binds the
// project service to the configured storage backend.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{config: cfg, logger: logger}

	if cfg.Database.URL != "" {
		db, err := openDatabase(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		app.db = db
	}

	projects, err := newProjectStore(cfg.Storage.Backend, app.db, logger)
	if err != nil {
		app.close()
		return nil, err
	}

	app.projects, err = service.NewProjectService(projects, logger)
	if err != nil {
		app.close()
		return nil, err
	}

	return app, nil
}

// newProjectStore resolves the storage backend name to a ProjectStore.
func newProjectStore(backend string, db *sql.DB, logger *slog.Logger) (store.ProjectStore, error) {
	switch backend {
	case config.BackendMemory:
		return memory.NewProjectStore(logger), nil
	case config.BackendPostgres:
		if db == nil {
			return nil, errDatabaseRequired
		}
		return postgres.NewPostgresProjectStore(db, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// openDatabase establishes a connection to the database and configures the connection pool.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		logger.Error("database ping failed", slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Debug("database connection established")
	return db, nil
}

func (a *application) requireDB() (*sql.DB, error) {
	if a.db == nil {
		return nil, errDatabaseRequired
	}
	return a.db, nil
}

func (a *application) locations() (store.LocationStore, error) {
	db, err := a.requireDB()
	if err != nil {
		return nil, err
	}
	return postgres.NewPostgresLocationStore(db, a.logger), nil
}

func (a *application) users() (store.UserStore, error) {
	db, err := a.requireDB()
	if err != nil {
		return nil, err
	}
	return postgres.NewPostgresUserStore(db, a.logger, bcrypt.DefaultCost), nil
}

func (a *application) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", slog.String("error", err.Error()))
	}
	a.db = nil
}
