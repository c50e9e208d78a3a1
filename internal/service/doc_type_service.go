package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"qtrack/internal/domain"
	"qtrack/internal/port"
)

// CreateDocTypeInput is the DTO for registering a document type.
type CreateDocTypeInput struct {
	Code      string                  `json:"code" binding:"required"`
	Name      string                  `json:"name" binding:"required"`
	Mode      domain.DocumentTypeMode `json:"mode" binding:"required"`
	SortOrder int                     `json:"sort_order"`
}

// UpdateDocTypeInput is the DTO for updating a document type. The code is
// immutable; parsed filenames and stored slots refer to it.
type UpdateDocTypeInput struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// DocTypeService manages the runtime document-type registry.
type DocTypeService interface {
	Create(ctx context.Context, input CreateDocTypeInput) (*domain.DocumentType, error)
	GetByCode(ctx context.Context, code string) (*domain.DocumentType, error)
	List(ctx context.Context) ([]domain.DocumentType, error)
	ListActive(ctx context.Context) ([]domain.DocumentType, error)
	Update(ctx context.Context, code string, input UpdateDocTypeInput) (*domain.DocumentType, error)
}

type docTypeService struct {
	repo port.DocumentTypeRepository
}

// NewDocTypeService creates a new DocTypeService implementation.
func NewDocTypeService(repo port.DocumentTypeRepository) DocTypeService {
	return &docTypeService{repo: repo}
}

func (s *docTypeService) Create(ctx context.Context, input CreateDocTypeInput) (*domain.DocumentType, error) {
	if input.Mode != domain.DocTypeModeSingle && input.Mode != domain.DocTypeModeMulti {
		return nil, domain.ErrUnknownDocType
	}

	docType := &domain.DocumentType{
		ID:        uuid.New(),
		Code:      strings.ToUpper(strings.TrimSpace(input.Code)),
		Name:      input.Name,
		Mode:      input.Mode,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}

	if err := s.repo.Create(ctx, docType); err != nil {
		return nil, err
	}
	return docType, nil
}

func (s *docTypeService) GetByCode(ctx context.Context, code string) (*domain.DocumentType, error) {
	return s.repo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

func (s *docTypeService) List(ctx context.Context) ([]domain.DocumentType, error) {
	return s.repo.List(ctx)
}

func (s *docTypeService) ListActive(ctx context.Context) ([]domain.DocumentType, error) {
	return s.repo.ListActive(ctx)
}

func (s *docTypeService) Update(ctx context.Context, code string, input UpdateDocTypeInput) (*domain.DocumentType, error) {
	docType, err := s.repo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		docType.Name = *input.Name
	}
	if input.SortOrder != nil {
		docType.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		docType.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, docType); err != nil {
		return nil, err
	}
	return docType, nil
}
