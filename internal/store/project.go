package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jrescalona/rainalert/internal/domain"
)

// ProjectStore defines the interface for project data persistence.
// The in-memory and PostgreSQL implementations share this contract, including
// its status and error policy.
type ProjectStore interface {
	// Insert stores project under id. It overwrites project.ID with id and
	// assigns freshly generated IDs to the nested address and location.
	// Returns a validation error wrapped in ErrInvalidEntity if data is invalid.
	Insert(ctx context.Context, id uuid.UUID, project *domain.Project) error

	// GetByID retrieves a project with its address and location populated.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	// List returns every project. The result is unbounded and intended for
	// diagnostics only.
	List(ctx context.Context) ([]*domain.Project, error)

	// ListByUserID returns every project owned by userID, or an empty slice.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)

	// UpdateByID replaces the name and description of the project with the
	// given id. The ID, owner and address are preserved.
	// Returns StatusNotFound, and changes nothing, if the project does not exist.
	UpdateByID(ctx context.Context, id uuid.UUID, update *domain.Project) (Status, error)

	// DeleteByID removes the project with the given id.
	// Returns StatusNotFound if the project does not exist.
	DeleteByID(ctx context.Context, id uuid.UUID) (Status, error)
}
