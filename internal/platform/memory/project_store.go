package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jrescalona/rainalert/internal/domain"
	"github.com/jrescalona/rainalert/internal/platform/logger"
	"github.com/jrescalona/rainalert/internal/store"
)

// ProjectStore implements store.ProjectStore with an insertion-ordered slice.
// Projects are copied on the way in and out, so callers never share memory
// with the stored values.
type ProjectStore struct {
	mu       sync.RWMutex
	projects []*domain.Project
	logger   *slog.Logger
}

// NewProjectStore creates an empty in-memory project store.
// If logger is nil, a default logger will be used.
func NewProjectStore(logger *slog.Logger) *ProjectStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectStore{
		logger: logger.With(slog.String("component", "memory_project_store")),
	}
}

var _ store.ProjectStore = (*ProjectStore)(nil)

// Insert implements store.ProjectStore.Insert.
func (s *ProjectStore) Insert(ctx context.Context, id uuid.UUID, project *domain.Project) error {
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
	project.Address.ID = uuid.New()
	project.Address.Location.ID = uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) >= 0 {
		log.Warn("project id already present", slog.String("project_id", id.String()))
		return store.NewStoreError("project", "insert", "id already exists", store.ErrDuplicate)
	}

	s.projects = append(s.projects, project.Clone())

	log.Info("project inserted",
		slog.String("project_id", id.String()),
		slog.String("user_id", project.UserID.String()))
	return nil
}

// GetByID implements store.ProjectStore.GetByID.
func (s *ProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		logger.FromContextOrDefault(ctx, s.logger).Debug("project not found",
			slog.String("project_id", id.String()))
		return nil, store.ErrProjectNotFound
	}
	return s.projects[i].Clone(), nil
}

// List implements store.ProjectStore.List. Projects are returned in insertion order.
func (s *ProjectStore) List(ctx context.Context) ([]*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p.Clone())
	}
	return out, nil
}

// ListByUserID implements store.ProjectStore.ListByUserID.
func (s *ProjectStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*domain.Project{}
	for _, p := range s.projects {
		if p.UserID == userID {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// UpdateByID implements store.ProjectStore.UpdateByID.
func (s *ProjectStore) UpdateByID(ctx context.Context, id uuid.UUID, update *domain.Project) (store.Status, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update == nil || update.Name == "" {
		return store.StatusNotFound, store.InvalidEntity(domain.ErrEmptyProjectName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Debug("project not found for update", slog.String("project_id", id.String()))
		return store.StatusNotFound, nil
	}

	s.projects[i].Name = update.Name
	s.projects[i].Description = update.Description

	log.Info("project updated", slog.String("project_id", id.String()))
	return store.StatusOK, nil
}

// DeleteByID implements store.ProjectStore.DeleteByID.
func (s *ProjectStore) DeleteByID(ctx context.Context, id uuid.UUID) (store.Status, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Debug("project not found for delete", slog.String("project_id", id.String()))
		return store.StatusNotFound, nil
	}

	s.projects = append(s.projects[:i], s.projects[i+1:]...)

	log.Info("project deleted", slog.String("project_id", id.String()))
	return store.StatusOK, nil
}

// indexOf returns the position of id in s.projects, or -1. Callers hold s.mu.
func (s *ProjectStore) indexOf(id uuid.UUID) int {
	for i, p := range s.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}
