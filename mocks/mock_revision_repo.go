package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"qtrack/internal/domain"
)

// MockRevisionRepo is a mock implementation of port.RevisionRepository.
type MockRevisionRepo struct {
	mock.Mock
}

func (m *MockRevisionRepo) Create(ctx context.Context, revision *domain.DocumentRevision) error {
	args := m.Called(ctx, revision)
	return args.Error(0)
}

func (m *MockRevisionRepo) MaxRevision(ctx context.Context, projectID uuid.UUID, docTypeCode string) (int, error) {
	args := m.Called(ctx, projectID, docTypeCode)
	return args.Int(0), args.Error(1)
}

func (m *MockRevisionRepo) ListBySlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentRevision, error) {
	args := m.Called(ctx, projectID, docTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentRevision), args.Error(1)
}
