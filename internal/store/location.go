package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jrescalona/rainalert/internal/domain"
)

// LocationStore defines the interface for location data persistence.
type LocationStore interface {
	// Insert stores location under id, overwriting location.ID.
	Insert(ctx context.Context, id uuid.UUID, location *domain.Location) error

	// GetByID retrieves a location.
	// Returns ErrLocationNotFound if the location does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)

	// List returns every location.
	List(ctx context.Context) ([]*domain.Location, error)

	// UpdateByID replaces grid ID, grid X/Y, longitude and latitude.
	UpdateByID(ctx context.Context, id uuid.UUID, update *domain.Location) (Status, error)

	// DeleteByID removes the location. A location still referenced by an
	// address cannot be deleted and yields ErrInvalidEntity.
	DeleteByID(ctx context.Context, id uuid.UUID) (Status, error)
}
