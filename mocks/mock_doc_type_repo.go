package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"qtrack/internal/domain"
)

// MockDocTypeRepo is a mock implementation of port.DocumentTypeRepository.
type MockDocTypeRepo struct {
	mock.Mock
}

func (m *MockDocTypeRepo) Create(ctx context.Context, docType *domain.DocumentType) error {
	args := m.Called(ctx, docType)
	return args.Error(0)
}

func (m *MockDocTypeRepo) GetByCode(ctx context.Context, code string) (*domain.DocumentType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentType), args.Error(1)
}

func (m *MockDocTypeRepo) List(ctx context.Context) ([]domain.DocumentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentType), args.Error(1)
}

func (m *MockDocTypeRepo) ListActive(ctx context.Context) ([]domain.DocumentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentType), args.Error(1)
}

func (m *MockDocTypeRepo) Update(ctx context.Context, docType *domain.DocumentType) error {
	args := m.Called(ctx, docType)
	return args.Error(0)
}
