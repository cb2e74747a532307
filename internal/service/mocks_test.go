package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jrescalona/rainalert/internal/domain"
	"github.com/jrescalona/rainalert/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockProjectStore is a mock implementation of store.ProjectStore
type MockProjectStore struct {
	mock.Mock
}

var _ store.ProjectStore = (*MockProjectStore)(nil)

func (m *MockProjectStore) Insert(ctx context.Context, id uuid.UUID, project *domain.Project) error {
	args := m.Called(ctx, id, project)
	return args.Error(0)
}

func (m *MockProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	project, _ := args.Get(0).(*domain.Project)
	return project, args.Error(1)
}

func (m *MockProjectStore) List(ctx context.Context) ([]*domain.Project, error) {
	args := m.Called(ctx)
	projects, _ := args.Get(0).([]*domain.Project)
	return projects, args.Error(1)
}

func (m *MockProjectStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	args := m.Called(ctx, userID)
	projects, _ := args.Get(0).([]*domain.Project)
	return projects, args.Error(1)
}

func (m *MockProjectStore) UpdateByID(
	ctx context.Context,
	id uuid.UUID,
	update *domain.Project,
) (store.Status, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(store.Status), args.Error(1)
}

func (m *MockProjectStore) DeleteByID(ctx context.Context, id uuid.UUID) (store.Status, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(store.Status), args.Error(1)
}
