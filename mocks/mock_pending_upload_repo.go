package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"qtrack/internal/domain"
)

// MockPendingUploadRepo is a mock implementation of port.PendingUploadRepository.
type MockPendingUploadRepo struct {
	mock.Mock
}

func (m *MockPendingUploadRepo) Create(ctx context.Context, pending *domain.PendingUpload) error {
	args := m.Called(ctx, pending)
	return args.Error(0)
}

func (m *MockPendingUploadRepo) GetByID(ctx context.Context, pendingID uuid.UUID) (*domain.PendingUpload, error) {
	args := m.Called(ctx, pendingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingUpload), args.Error(1)
}

func (m *MockPendingUploadRepo) ExistsForSlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) (bool, error) {
	args := m.Called(ctx, projectID, docTypeCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockPendingUploadRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.PendingUpload, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingUpload), args.Error(1)
}

func (m *MockPendingUploadRepo) ListBySlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.PendingUpload, error) {
	args := m.Called(ctx, projectID, docTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingUpload), args.Error(1)
}

func (m *MockPendingUploadRepo) List(ctx context.Context, offset, limit int) ([]domain.PendingUpload, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PendingUpload), args.Int(1), args.Error(2)
}

func (m *MockPendingUploadRepo) Delete(ctx context.Context, pendingID uuid.UUID) error {
	args := m.Called(ctx, pendingID)
	return args.Error(0)
}
