package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrescalona/rainalert/internal/domain"
	"github.com/jrescalona/rainalert/internal/platform/logger"
	"github.com/jrescalona/rainalert/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const insertUserSQL = `
	INSERT INTO users (id, first_name, last_name, role, email, hashed_password, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const selectUserSQL = `
	SELECT id, first_name, last_name, role, email, hashed_password, created_at, updated_at
	FROM users
`

const updateUserSQL = `
	UPDATE users
	SET first_name = $1, last_name = $2, role = $3, email = $4, hashed_password = $5, updated_at = $6
	WHERE id = $7
`

const deleteUserSQL = `DELETE FROM users WHERE id = $1`

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db         store.DBTX
	bcryptCost int
	logger     *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// A bcryptCost outside bcrypt's accepted range falls back to bcrypt.DefaultCost.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger, bcryptCost int) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &PostgresUserStore{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx returns a copy of the store bound to tx.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) *PostgresUserStore {
	return &PostgresUserStore{db: tx, bcryptCost: s.bcryptCost, logger: s.logger}
}

// Create implements store.UserStore.Create
// The plaintext password is hashed and then cleared from user.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user == nil {
		return store.InvalidEntity(domain.ErrEmptyUserID)
	}
	if user.Password == "" {
		return store.InvalidEntity(domain.ErrEmptyPassword)
	}
	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return store.InvalidEntity(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	user.HashedPassword = string(hashed)
	user.Password = ""
	user.Email = strings.TrimSpace(user.Email)

	_, err = s.db.ExecContext(
		ctx,
		insertUserSQL,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Role,
		user.Email,
		user.HashedPassword,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("email already exists", slog.String("user_id", user.ID.String()))
			return MapUniqueViolation(err, store.ErrEmailExists)
		}
		log.Error("failed to insert user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return MapError(err)
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving user by ID", slog.String("user_id", id.String()))
	return s.getOne(ctx, selectUserSQL+" WHERE id = $1", id)
}

// GetByEmail implements store.UserStore.GetByEmail
// Emails match case-insensitively, like the unique index.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving user by email")
	return s.getOne(ctx, selectUserSQL+" WHERE LOWER(email) = LOWER($1)", strings.TrimSpace(email))
}

func (s *PostgresUserStore) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to map user row: %w", err)
	}

	return &user, nil
}

// Update implements store.UserStore.Update
// A non-empty plaintext password replaces the stored hash.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user == nil {
		return store.InvalidEntity(domain.ErrEmptyUserID)
	}
	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return store.InvalidEntity(err)
	}

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
		if err != nil {
			log.Error("failed to hash password", slog.String("error", err.Error()))
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = string(hashed)
		user.Password = ""
	}

	user.UpdatedAt = time.Now().UTC()
	user.Email = strings.TrimSpace(user.Email)

	result, err := s.db.ExecContext(
		ctx,
		updateUserSQL,
		user.FirstName,
		user.LastName,
		user.Role,
		user.Email,
		user.HashedPassword,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("email already exists", slog.String("user_id", user.ID.String()))
			return MapUniqueViolation(err, store.ErrEmailExists)
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return MapError(err)
	}

	status, err := statusFromResult(result)
	if err != nil {
		return err
	}
	if status == store.StatusNotFound {
		log.Debug("user not found for update", slog.String("user_id", user.ID.String()))
		return store.ErrUserNotFound
	}

	log.Info("user updated", slog.String("user_id", user.ID.String()))
	return nil
}

// Delete implements store.UserStore.Delete
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return MapError(err)
	}

	status, err := statusFromResult(result)
	if err != nil {
		return err
	}
	if status == store.StatusNotFound {
		log.Debug("user not found for delete", slog.String("user_id", id.String()))
		return store.ErrUserNotFound
	}

	log.Info("user deleted", slog.String("user_id", id.String()))
	return nil
}
