package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"qtrack/internal/domain"
	"qtrack/internal/service"
)

// MockRevisionService is a mock implementation of service.RevisionService.
type MockRevisionService struct {
	mock.Mock
}

func (m *MockRevisionService) SubmitPending(ctx context.Context, input service.SubmitPendingInput) (*domain.PendingUpload, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingUpload), args.Error(1)
}

func (m *MockRevisionService) Approve(ctx context.Context, pendingID, approverID uuid.UUID, approverRole domain.UserRole) (*service.SlotState, error) {
	args := m.Called(ctx, pendingID, approverID, approverRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SlotState), args.Error(1)
}

func (m *MockRevisionService) Reject(ctx context.Context, pendingID, reviewerID uuid.UUID, reviewerRole domain.UserRole) (*service.SlotState, error) {
	args := m.Called(ctx, pendingID, reviewerID, reviewerRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SlotState), args.Error(1)
}

func (m *MockRevisionService) Cancel(ctx context.Context, pendingID, userID uuid.UUID, userRole domain.UserRole) (*service.SlotState, error) {
	args := m.Called(ctx, pendingID, userID, userRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SlotState), args.Error(1)
}

func (m *MockRevisionService) ListPending(ctx context.Context, offset, limit int) ([]domain.PendingUpload, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PendingUpload), args.Int(1), args.Error(2)
}

func (m *MockRevisionService) ListPendingByProject(ctx context.Context, projectID uuid.UUID) ([]domain.PendingUpload, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingUpload), args.Error(1)
}

func (m *MockRevisionService) Slot(ctx context.Context, projectID uuid.UUID, docTypeCode string) (*service.SlotState, error) {
	args := m.Called(ctx, projectID, docTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SlotState), args.Error(1)
}

func (m *MockRevisionService) ProjectDocuments(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectDocument, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectDocument), args.Error(1)
}

func (m *MockRevisionService) Revisions(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentRevision, error) {
	args := m.Called(ctx, projectID, docTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentRevision), args.Error(1)
}

func (m *MockRevisionService) FileURL(ctx context.Context, fileKey string) (string, error) {
	args := m.Called(ctx, fileKey)
	return args.String(0), args.Error(1)
}
