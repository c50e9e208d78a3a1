package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"qtrack/internal/domain"
)

// MockProjectDocumentRepo is a mock implementation of port.ProjectDocumentRepository.
type MockProjectDocumentRepo struct {
	mock.Mock
}

func (m *MockProjectDocumentRepo) Upsert(ctx context.Context, doc *domain.ProjectDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockProjectDocumentRepo) Get(ctx context.Context, projectID uuid.UUID, docTypeCode string) (*domain.ProjectDocument, error) {
	args := m.Called(ctx, projectID, docTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectDocument), args.Error(1)
}

func (m *MockProjectDocumentRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectDocument, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectDocument), args.Error(1)
}

func (m *MockProjectDocumentRepo) SetDelegates(ctx context.Context, projectID uuid.UUID, docTypeCode string, userIDs []uuid.UUID, assignedBy uuid.UUID) error {
	args := m.Called(ctx, projectID, docTypeCode, userIDs, assignedBy)
	return args.Error(0)
}

func (m *MockProjectDocumentRepo) ListDelegates(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentDelegate, error) {
	args := m.Called(ctx, projectID, docTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentDelegate), args.Error(1)
}
