package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"qtrack/internal/domain"
)

// MockDocumentFileRepo is a mock implementation of port.DocumentFileRepository.
type MockDocumentFileRepo struct {
	mock.Mock
}

func (m *MockDocumentFileRepo) Append(ctx context.Context, file *domain.DocumentFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockDocumentFileRepo) ListBySlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentFile, error) {
	args := m.Called(ctx, projectID, docTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentFile), args.Error(1)
}

func (m *MockDocumentFileRepo) CountBySlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) (int, error) {
	args := m.Called(ctx, projectID, docTypeCode)
	return args.Int(0), args.Error(1)
}
