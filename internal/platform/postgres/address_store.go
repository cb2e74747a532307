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

const insertAddressSQL = `
	INSERT INTO address (id, address_line1, address_line2, city, state, postal_code, location_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

const deleteAddressSQL = `DELETE FROM address WHERE id = $1 RETURNING location_id`

// PostgresAddressStore implements the store.AddressStore interface.
// Every address row is written together with its location row, inside one
// transaction when the store is bound to a connection pool.
type PostgresAddressStore struct {
	db        store.DBTX
	locations *PostgresLocationStore
	logger    *slog.Logger
}

// NewPostgresAddressStore creates a new PostgreSQL implementation of the AddressStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAddressStore(db store.DBTX, logger *slog.Logger) *PostgresAddressStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAddressStore{
		db:        db,
		locations: NewPostgresLocationStore(db, logger),
		logger:    logger.With(slog.String("component", "address_store")),
	}
}

// Ensure PostgresAddressStore implements store.AddressStore interface
var _ store.AddressStore = (*PostgresAddressStore)(nil)

// WithTx returns a copy of the store bound to tx.
func (s *PostgresAddressStore) WithTx(tx *sql.Tx) *PostgresAddressStore {
	return s.withDB(tx)
}

func (s *PostgresAddressStore) withDB(db store.DBTX) *PostgresAddressStore {
	return &PostgresAddressStore{
		db:        db,
		locations: s.locations.withDB(db),
		logger:    s.logger,
	}
}

// Insert implements store.AddressStore.Insert
// The location row is inserted first so the address can reference it.
func (s *PostgresAddressStore) Insert(ctx context.Context, id uuid.UUID, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if address == nil {
		return store.InvalidEntity(domain.ErrMissingAddress)
	}
	if err := address.Validate(); err != nil {
		log.Warn("address validation failed during insert",
			slog.String("error", err.Error()),
			slog.String("address_id", id.String()))
		return store.InvalidEntity(err)
	}

	address.ID = id

	err := store.RunInTx(ctx, s.db, func(ctx context.Context, q store.DBTX) error {
		if err := s.locations.withDB(q).Insert(ctx, uuid.New(), address.Location); err != nil {
			return err
		}

		_, err := q.ExecContext(
			ctx,
			insertAddressSQL,
			address.ID,
			address.Line1,
			address.Line2,
			address.City,
			address.State,
			address.PostalCode,
			address.Location.ID,
		)
		if err != nil {
			log.Error("failed to insert address",
				slog.String("error", err.Error()),
				slog.String("address_id", id.String()))
			return MapError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("address inserted",
		slog.String("address_id", id.String()),
		slog.String("location_id", address.Location.ID.String()))
	return nil
}

// InsertWithGeneratedID implements store.AddressStore.InsertWithGeneratedID
func (s *PostgresAddressStore) InsertWithGeneratedID(ctx context.Context, address *domain.Address) (uuid.UUID, error) {
	id := uuid.New()
	if err := s.Insert(ctx, id, address); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// GetByID implements store.AddressStore.GetByID
func (s *PostgresAddressStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving address by ID", slog.String("address_id", id.String()))

	query, args, err := addressSelect().Where("a.id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build address query: %w", err)
	}

	address, err := scanAddress(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("address not found", slog.String("address_id", id.String()))
			return nil, store.ErrAddressNotFound
		}
		log.Error("failed to get address by ID",
			slog.String("error", err.Error()),
			slog.String("address_id", id.String()))
		return nil, fmt.Errorf("failed to map address row: %w", err)
	}

	return address, nil
}

// ListByUserID implements store.AddressStore.ListByUserID
func (s *PostgresAddressStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := addressSelect().
		Join("project p ON p.address_id = a.id").
		Where("p.user_id = ?", userID).
		OrderBy("a.address_line1", "a.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build address query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list addresses by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	addresses := []*domain.Address{}
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			log.Error("failed to scan address row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to map address row: %w", err)
		}
		addresses = append(addresses, address)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed addresses by user",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(addresses)))
	return addresses, nil
}

// UpdateByID implements store.AddressStore.UpdateByID
// The address row and its location row are updated together.
func (s *PostgresAddressStore) UpdateByID(
	ctx context.Context,
	id uuid.UUID,
	update *domain.Address,
) (store.Status, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update == nil {
		return store.StatusNotFound, store.InvalidEntity(domain.ErrMissingAddress)
	}
	if err := update.Validate(); err != nil {
		log.Warn("address validation failed during update",
			slog.String("error", err.Error()),
			slog.String("address_id", id.String()))
		return store.StatusNotFound, store.InvalidEntity(err)
	}

	query, args, err := psql.Update("address").
		Set("address_line1", update.Line1).
		Set("address_line2", update.Line2).
		Set("city", update.City).
		Set("state", update.State).
		Set("postal_code", update.PostalCode).
		Where("id = ?", id).
		Suffix("RETURNING location_id").
		ToSql()
	if err != nil {
		return store.StatusNotFound, fmt.Errorf("failed to build address update: %w", err)
	}

	status := store.StatusNotFound
	err = store.RunInTx(ctx, s.db, func(ctx context.Context, q store.DBTX) error {
		var locationID uuid.UUID
		if err := q.QueryRowContext(ctx, query, args...).Scan(&locationID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			log.Error("failed to update address",
				slog.String("error", err.Error()),
				slog.String("address_id", id.String()))
			return MapError(err)
		}

		locStatus, err := s.locations.withDB(q).UpdateByID(ctx, locationID, update.Location)
		if err != nil {
			return err
		}
		status = locStatus
		return nil
	})
	if err != nil {
		return store.StatusNotFound, err
	}

	if status == store.StatusNotFound {
		log.Debug("address not found for update", slog.String("address_id", id.String()))
		return status, nil
	}

	log.Info("address updated", slog.String("address_id", id.String()))
	return store.StatusOK, nil
}

// DeleteByID implements store.AddressStore.DeleteByID
// The address's location is removed in the same transaction.
func (s *PostgresAddressStore) DeleteByID(ctx context.Context, id uuid.UUID) (store.Status, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	status := store.StatusNotFound
	err := store.RunInTx(ctx, s.db, func(ctx context.Context, q store.DBTX) error {
		var locationID uuid.UUID
		if err := q.QueryRowContext(ctx, deleteAddressSQL, id).Scan(&locationID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			log.Error("failed to delete address",
				slog.String("error", err.Error()),
				slog.String("address_id", id.String()))
			return MapError(err)
		}

		if _, err := s.locations.withDB(q).DeleteByID(ctx, locationID); err != nil {
			return err
		}
		status = store.StatusOK
		return nil
	})
	if err != nil {
		return store.StatusNotFound, err
	}

	if status == store.StatusNotFound {
		log.Debug("address not found for delete", slog.String("address_id", id.String()))
		return status, nil
	}

	log.Info("address deleted", slog.String("address_id", id.String()))
	return store.StatusOK, nil
}
