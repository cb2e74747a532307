package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jrescalona/rainalert/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store, hashing the plaintext password.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update modifies an existing user's details. A non-empty plaintext
	// Password is hashed and replaces the stored hash.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user and, through the schema, the projects they own.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
