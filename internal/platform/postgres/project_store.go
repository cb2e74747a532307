package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jrescalona/rainalert/internal/domain"
	"github.com/jrescalona/rainalert/internal/platform/logger"
	"github.com/jrescalona/rainalert/internal/store"
)

const insertProjectSQL = `
	INSERT INTO project (id, user_id, name, description, address_id)
	VALUES ($1, $2, $3, $4, $5)
`

const deleteProjectSQL = `DELETE FROM project WHERE id = $1 RETURNING address_id`

// PostgresProjectStore implements the store.ProjectStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProjectStore struct {
	db        store.DBTX
	addresses *PostgresAddressStore
	logger    *slog.Logger
}

// NewPostgresProjectStore creates a new PostgreSQL implementation of the ProjectStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProjectStore(db store.DBTX, logger *slog.Logger) *PostgresProjectStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProjectStore{
		db:        db,
		addresses: NewPostgresAddressStore(db, logger),
		logger:    logger.With(slog.String("component", "project_store")),
	}
}

// Ensure PostgresProjectStore implements store.ProjectStore interface
var _ store.ProjectStore = (*PostgresProjectStore)(nil)

// WithTx returns a copy of the store bound to tx. Operations on the copy
// join tx instead of opening their own transaction.
func (s *PostgresProjectStore) WithTx(tx *sql.Tx) *PostgresProjectStore {
	return &PostgresProjectStore{
		db:        tx,
		addresses: s.addresses.withDB(tx),
		logger:    s.logger,
	}
}

// Insert implements store.ProjectStore.Insert
// It writes the location, address and project rows in one transaction.
func (s *PostgresProjectStore) Insert(ctx context.Context, id uuid.UUID, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if project == nil {
		return store.InvalidEntity(domain.ErrValidation)
	}
	if err := project.Validate(); err != nil {
		log.Warn("project validation failed during insert",
			slog.String("error", err.Error()),
			slog.String("project_id", id.String()))
		return store.InvalidEntity(err)
	}

	project.ID = id

	err := store.RunInTx(ctx, s.db, func(ctx context.Context, q store.DBTX) error {
		if err := s.addresses.withDB(q).Insert(ctx, uuid.New(), project.Address); err != nil {
			return err
		}

		_, err := q.ExecContext(
			ctx,
			insertProjectSQL,
			project.ID,
			project.UserID,
			project.Name,
			project.Description,
			project.Address.ID,
		)
		if err != nil {
			log.Error("failed to insert project",
				slog.String("error", err.Error()),
				slog.String("project_id", id.String()),
				slog.String("user_id", project.UserID.String()))
			return MapError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("project inserted",
		slog.String("project_id", id.String()),
		slog.String("user_id", project.UserID.String()))
	return nil
}

// GetByID implements store.ProjectStore.GetByID
func (s *PostgresProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving project by ID", slog.String("project_id", id.String()))

	query, args, err := projectSelect().Where("p.id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build project query: %w", err)
	}

	project, err := scanProject(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("project not found", slog.String("project_id", id.String()))
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to get project by ID",
			slog.String("error", err.Error()),
			slog.String("project_id", id.String()))
		return nil, fmt.Errorf("failed to map project row: %w", err)
	}

	log.Debug("project retrieved successfully", slog.String("project_id", id.String()))
	return project, nil
}

// List implements store.ProjectStore.List
func (s *PostgresProjectStore) List(ctx context.Context) ([]*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := projectSelect().OrderBy("p.name", "p.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build project query: %w", err)
	}

	projects, err := s.queryProjects(ctx, query, args...)
	if err != nil {
		log.Error("failed to list projects", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed projects", slog.Int("count", len(projects)))
	return projects, nil
}

// ListByUserID implements store.ProjectStore.ListByUserID
func (s *PostgresProjectStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := projectSelect().
		Where("p.user_id = ?", userID).
		OrderBy("p.name", "p.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build project query: %w", err)
	}

	projects, err := s.queryProjects(ctx, query, args...)
	if err != nil {
		log.Error("failed to list projects by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	log.Debug("listed projects by user",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(projects)))
	return projects, nil
}

func (s *PostgresProjectStore) queryProjects(ctx context.Context, query string, args ...any) ([]*domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	projects := []*domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to map project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateByID implements store.ProjectStore.UpdateByID
// Only the name and description change.
func (s *PostgresProjectStore) UpdateByID(
	ctx context.Context,
	id uuid.UUID,
	update *domain.Project,
) (store.Status, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update == nil {
		return store.StatusNotFound, store.InvalidEntity(domain.ErrValidation)
	}
	if update.Name == "" {
		log.Warn("project validation failed during update",
			slog.String("error", domain.ErrEmptyProjectName.Error()),
			slog.String("project_id", id.String()))
		return store.StatusNotFound, store.InvalidEntity(domain.ErrEmptyProjectName)
	}

	query, args, err := psql.Update("project").
		Set("name", update.Name).
		Set("description", update.Description).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return store.StatusNotFound, fmt.Errorf("failed to build project update: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update project",
			slog.String("error", err.Error()),
			slog.String("project_id", id.String()))
		return store.StatusNotFound, MapError(err)
	}

	status, err := statusFromResult(result)
	if err != nil {
		return store.StatusNotFound, err
	}
	if status == store.StatusNotFound {
		log.Debug("project not found for update", slog.String("project_id", id.String()))
		return status, nil
	}

	log.Info("project updated", slog.String("project_id", id.String()))
	return store.StatusOK, nil
}

// DeleteByID implements store.ProjectStore.DeleteByID
// The project's address and location are removed in the same transaction.
func (s *PostgresProjectStore) DeleteByID(ctx context.Context, id uuid.UUID) (store.Status, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	status := store.StatusNotFound
	err := store.RunInTx(ctx, s.db, func(ctx context.Context, q store.DBTX) error {
		var addressID uuid.UUID
		if err := q.QueryRowContext(ctx, deleteProjectSQL, id).Scan(&addressID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			log.Error("failed to delete project",
				slog.String("error", err.Error()),
				slog.String("project_id", id.String()))
			return MapError(err)
		}

		if _, err := s.addresses.withDB(q).DeleteByID(ctx, addressID); err != nil {
			return err
		}
		status = store.StatusOK
		return nil
	})
	if err != nil {
		return store.StatusNotFound, err
	}

	if status == store.StatusNotFound {
		log.Debug("project not found for delete", slog.String("project_id", id.String()))
		return status, nil
	}

	log.Info("project deleted", slog.String("project_id", id.String()))
	return store.StatusOK, nil
}
