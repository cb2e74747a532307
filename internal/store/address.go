package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jrescalona/rainalert/internal/domain"
)

// AddressStore defines the interface for address data persistence.
// Addresses are always stored together with their location.
type AddressStore interface {
	// Insert stores address under id, overwriting address.ID and assigning a
	// fresh ID to its location.
	Insert(ctx context.Context, id uuid.UUID, address *domain.Address) error

	// InsertWithGeneratedID stores address under a newly generated ID and returns it.
	InsertWithGeneratedID(ctx context.Context, address *domain.Address) (uuid.UUID, error)

	// GetByID retrieves an address with its location.
	// Returns ErrAddressNotFound if the address does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Address, error)

	// ListByUserID returns the addresses of every project owned by userID.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Address, error)

	// UpdateByID replaces the address lines, city, state, postal code and the
	// nested location values. IDs are preserved.
	UpdateByID(ctx context.Context, id uuid.UUID, update *domain.Address) (Status, error)

	// DeleteByID removes the address and its location.
	DeleteByID(ctx context.Context, id uuid.UUID) (Status, error)
}
