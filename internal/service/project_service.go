package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jrescalona/rainalert/internal/domain"
	"github.com/jrescalona/rainalert/internal/platform/logger"
	"github.com/jrescalona/rainalert/internal/store"
)

// ProjectService provides project-related operations.
type ProjectService interface {
	// AddProject stores project under a newly generated ID and returns it
	// with all identifiers populated.
	AddProject(ctx context.Context, project *domain.Project) (*domain.Project, error)

	// GetAllProjects returns every project.
	GetAllProjects(ctx context.Context) ([]*domain.Project, error)

	// GetProjectByID returns the project or ErrProjectNotFound.
	GetProjectByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	// GetAllProjectsByUserID returns the projects owned by userID.
	GetAllProjectsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)

	// UpdateProjectByID replaces the name and description of a project.
	UpdateProjectByID(ctx context.Context, id uuid.UUID, update *domain.Project) (store.Status, error)

	// DeleteProjectByID removes a project.
	DeleteProjectByID(ctx context.Context, id uuid.UUID) (store.Status, error)
}

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	projects store.ProjectStore
	logger   *slog.Logger
}

// NewProjectService creates a new ProjectService bound to projects.
// It returns an error if projects is nil.
func NewProjectService(projects store.ProjectStore, logger *slog.Logger) (ProjectService, error) {
	if projects == nil {
		return nil, &ProjectServiceError{
			Operation: "create_service",
			Message:   "projects store cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &projectServiceImpl{
		projects: projects,
		logger:   logger.With(slog.String("component", "project_service")),
	}, nil
}

// AddProject implements ProjectService.AddProject
func (s *projectServiceImpl) AddProject(
	ctx context.Context,
	project *domain.Project,
) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id := uuid.New()
	if err := s.projects.Insert(ctx, id, project); err != nil {
		log.Error("failed to add project",
			slog.String("error", err.Error()),
			slog.String("project_id", id.String()))
		return nil, NewProjectServiceError("add_project", "failed to store project", err)
	}

	log.Info("project added",
		slog.String("project_id", id.String()),
		slog.String("user_id", project.UserID.String()))
	return project, nil
}

// GetAllProjects implements ProjectService.GetAllProjects
func (s *projectServiceImpl) GetAllProjects(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, NewProjectServiceError("get_all_projects", "failed to list projects", err)
	}
	return projects, nil
}

// GetProjectByID implements ProjectService.GetProjectByID
func (s *projectServiceImpl) GetProjectByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		log.Debug("failed to get project",
			slog.String("error", err.Error()),
			slog.String("project_id", id.String()))
		return nil, NewProjectServiceError("get_project", "failed to retrieve project", err)
	}
	return project, nil
}

// GetAllProjectsByUserID implements ProjectService.GetAllProjectsByUserID
func (s *projectServiceImpl) GetAllProjectsByUserID(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Project, error) {
	projects, err := s.projects.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewProjectServiceError(
			"get_projects_by_user",
			"failed to list projects for user",
			err,
		)
	}
	return projects, nil
}

// UpdateProjectByID implements ProjectService.UpdateProjectByID
func (s *projectServiceImpl) UpdateProjectByID(
	ctx context.Context,
	id uuid.UUID,
	update *domain.Project,
) (store.Status, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	status, err := s.projects.UpdateByID(ctx, id, update)
	if err != nil {
		log.Error("failed to update project",
			slog.String("error", err.Error()),
			slog.String("project_id", id.String()))
		return status, NewProjectServiceError("update_project", "failed to update project", err)
	}

	log.Info("project update finished",
		slog.String("project_id", id.String()),
		slog.String("status", status.String()))
	return status, nil
}

// DeleteProjectByID implements ProjectService.DeleteProjectByID
func (s *projectServiceImpl) DeleteProjectByID(ctx context.Context, id uuid.UUID) (store.Status, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	status, err := s.projects.DeleteByID(ctx, id)
	if err != nil {
		log.Error("failed to delete project",
			slog.String("error", err.Error()),
			slog.String("project_id", id.String()))
		return status, NewProjectServiceError("delete_project", "failed to delete project", err)
	}

	log.Info("project delete finished",
		slog.String("project_id", id.String()),
		slog.String("status", status.String()))
	return status, nil
}
