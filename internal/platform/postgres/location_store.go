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

const insertLocationSQL = `
	INSERT INTO location (id, grid_id, grid_x, grid_y, longitude, latitude)
	VALUES ($1, $2, $3, $4, $5, $6)
`

const deleteLocationSQL = `DELETE FROM location WHERE id = $1`

// PostgresLocationStore implements the store.LocationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLocationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLocationStore creates a new PostgreSQL implementation of the LocationStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresLocationStore(db store.DBTX, logger *slog.Logger) *PostgresLocationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLocationStore{
		db:     db,
		logger: logger.With(slog.String("component", "location_store")),
	}
}

// Ensure PostgresLocationStore implements store.LocationStore interface
var _ store.LocationStore = (*PostgresLocationStore)(nil)

// WithTx returns a copy of the store bound to tx.
func (s *PostgresLocationStore) WithTx(tx *sql.Tx) *PostgresLocationStore {
	return s.withDB(tx)
}

func (s *PostgresLocationStore) withDB(db store.DBTX) *PostgresLocationStore {
	return &PostgresLocationStore{db: db, logger: s.logger}
}

// Insert implements store.LocationStore.Insert
func (s *PostgresLocationStore) Insert(ctx context.Context, id uuid.UUID, location *domain.Location) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if location == nil {
		return store.InvalidEntity(domain.ErrMissingLocation)
	}
	if err := location.Validate(); err != nil {
		log.Warn("location validation failed during insert",
			slog.String("error", err.Error()),
			slog.String("location_id", id.String()))
		return store.InvalidEntity(err)
	}

	location.ID = id

	_, err := s.db.ExecContext(
		ctx,
		insertLocationSQL,
		location.ID,
		location.GridID,
		location.GridX,
		location.GridY,
		location.Longitude,
		location.Latitude,
	)
	if err != nil {
		log.Error("failed to insert location",
			slog.String("error", err.Error()),
			slog.String("location_id", id.String()))
		return MapError(err)
	}

	log.Info("location inserted",
		slog.String("location_id", id.String()),
		slog.String("grid_id", location.GridID))
	return nil
}

// GetByID implements store.LocationStore.GetByID
func (s *PostgresLocationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving location by ID", slog.String("location_id", id.String()))

	query, args, err := locationSelect().Where("l.id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build location query: %w", err)
	}

	location, err := scanLocation(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("location not found", slog.String("location_id", id.String()))
			return nil, store.ErrLocationNotFound
		}
		log.Error("failed to get location by ID",
			slog.String("error", err.Error()),
			slog.String("location_id", id.String()))
		return nil, fmt.Errorf("failed to map location row: %w", err)
	}

	return location, nil
}

// List implements store.LocationStore.List
func (s *PostgresLocationStore) List(ctx context.Context) ([]*domain.Location, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := locationSelect().OrderBy("l.grid_id", "l.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build location query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list locations", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	locations := []*domain.Location{}
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			log.Error("failed to scan location row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to map location row: %w", err)
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed locations", slog.Int("count", len(locations)))
	return locations, nil
}

// UpdateByID implements store.LocationStore.UpdateByID
func (s *PostgresLocationStore) UpdateByID(
	ctx context.Context,
	id uuid.UUID,
	update *domain.Location,
) (store.Status, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update == nil {
		return store.StatusNotFound, store.InvalidEntity(domain.ErrMissingLocation)
	}
	if err := update.Validate(); err != nil {
		log.Warn("location validation failed during update",
			slog.String("error", err.Error()),
			slog.String("location_id", id.String()))
		return store.StatusNotFound, store.InvalidEntity(err)
	}

	query, args, err := psql.Update("location").
		Set("grid_id", update.GridID).
		Set("grid_x", update.GridX).
		Set("grid_y", update.GridY).
		Set("longitude", update.Longitude).
		Set("latitude", update.Latitude).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return store.StatusNotFound, fmt.Errorf("failed to build location update: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update location",
			slog.String("error", err.Error()),
			slog.String("location_id", id.String()))
		return store.StatusNotFound, MapError(err)
	}

	status, err := statusFromResult(result)
	if err != nil {
		return store.StatusNotFound, err
	}
	if status == store.StatusNotFound {
		log.Debug("location not found for update", slog.String("location_id", id.String()))
		return status, nil
	}

	log.Info("location updated", slog.String("location_id", id.String()))
	return store.StatusOK, nil
}

// DeleteByID implements store.LocationStore.DeleteByID
func (s *PostgresLocationStore) DeleteByID(ctx context.Context, id uuid.UUID) (store.Status, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, deleteLocationSQL, id)
	if err != nil {
		log.Error("failed to delete location",
			slog.String("error", err.Error()),
			slog.String("location_id", id.String()))
		return store.StatusNotFound, MapError(err)
	}

	status, err := statusFromResult(result)
	if err != nil {
		return store.StatusNotFound, err
	}
	if status == store.StatusNotFound {
		log.Debug("location not found for delete", slog.String("location_id", id.String()))
		return status, nil
	}

	log.Info("location deleted", slog.String("location_id", id.String()))
	return store.StatusOK, nil
}
