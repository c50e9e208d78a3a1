package service

import (
	"context"

	"github.com/google/uuid"

	"qtrack/internal/domain"
	"qtrack/internal/matching"
	"qtrack/internal/port"
)

// CreateProjectInput is the DTO for registering a project.
type CreateProjectInput struct {
	ProjectName string `json:"project_name" binding:"required"`
	ItemName    string `json:"item_name" binding:"required"`
	PartNo      string `json:"part_no"`
	Customer    string `json:"customer"`
}

// UpdateProjectInput is the DTO for updating a project.
type UpdateProjectInput struct {
	ProjectName *string `json:"project_name"`
	ItemName    *string `json:"item_name"`
	PartNo      *string `json:"part_no"`
	Customer    *string `json:"customer"`
}

// SetDelegatesInput is the DTO for replacing a slot's approver set.
type SetDelegatesInput struct {
	UserIDs []uuid.UUID `json:"user_ids" binding:"required"`
}

// ProjectService defines the project management contract.
type ProjectService interface {
	Create(ctx context.Context, actorID uuid.UUID, input CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int, error)
	Update(ctx context.Context, actorID, projectID uuid.UUID, input UpdateProjectInput) (*domain.Project, error)
	Cancel(ctx context.Context, actorID, projectID uuid.UUID) error
	Delete(ctx context.Context, projectID uuid.UUID) error
	SetDelegates(ctx context.Context, actorID, projectID uuid.UUID, docTypeCode string, input SetDelegatesInput) error
	ListDelegates(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentDelegate, error)
	AuditTrail(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.AuditEntry, int, error)
}

type projectService struct {
	repo        port.ProjectRepository
	docRepo     port.ProjectDocumentRepository
	docTypeRepo port.DocumentTypeRepository
	auditRepo   port.AuditRepository
	cache       *matching.ProjectCache
}

// NewProjectService creates a new ProjectService implementation.
func NewProjectService(
	repo port.ProjectRepository,
	docRepo port.ProjectDocumentRepository,
	docTypeRepo port.DocumentTypeRepository,
	auditRepo port.AuditRepository,
	cache *matching.ProjectCache,
) ProjectService {
	return &projectService{
		repo:        repo,
		docRepo:     docRepo,
		docTypeRepo: docTypeRepo,
		auditRepo:   auditRepo,
		cache:       cache,
	}
}

func (s *projectService) Create(ctx context.Context, actorID uuid.UUID, input CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		ID:          uuid.New(),
		ProjectName: input.ProjectName,
		ItemName:    input.ItemName,
		PartNo:      input.PartNo,
		Customer:    input.Customer,
		Status:      domain.ProjectStatusActive,
		CreatedBy:   actorID,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	s.cache.Invalidate()

	recordAudit(ctx, s.auditRepo, &project.ID, &actorID, domain.AuditProjectCreated, map[string]any{
		"project_name": project.ProjectName,
		"item_name":    project.ItemName,
		"part_no":      project.PartNo,
	})
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	return s.repo.GetByID(ctx, projectID)
}

func (s *projectService) List(ctx context.Context, offset, limit int) ([]domain.Project, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *projectService) Update(ctx context.Context, actorID, projectID uuid.UUID, input UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if input.ProjectName != nil {
		project.ProjectName = *input.ProjectName
	}
	if input.ItemName != nil {
		project.ItemName = *input.ItemName
	}
	if input.PartNo != nil {
		project.PartNo = *input.PartNo
	}
	if input.Customer != nil {
		project.Customer = *input.Customer
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	s.cache.Invalidate()

	recordAudit(ctx, s.auditRepo, &project.ID, &actorID, domain.AuditProjectUpdated, nil)
	return project, nil
}

func (s *projectService) Cancel(ctx context.Context, actorID, projectID uuid.UUID) error {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.Status.IsTerminal() {
		return domain.ErrProjectNotActive
	}

	if err := s.repo.UpdateStatus(ctx, projectID, domain.ProjectStatusCancelled); err != nil {
		return err
	}
	s.cache.Invalidate()

	recordAudit(ctx, s.auditRepo, &projectID, &actorID, domain.AuditProjectUpdated, map[string]any{
		"status": domain.ProjectStatusCancelled,
	})
	return nil
}

func (s *projectService) Delete(ctx context.Context, projectID uuid.UUID) error {
	if err := s.repo.Delete(ctx, projectID); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *projectService) SetDelegates(ctx context.Context, actorID, projectID uuid.UUID, docTypeCode string, input SetDelegatesInput) error {
	if _, err := s.repo.GetByID(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.docTypeRepo.GetByCode(ctx, docTypeCode); err != nil {
		return err
	}

	if err := s.docRepo.SetDelegates(ctx, projectID, docTypeCode, input.UserIDs, actorID); err != nil {
		return err
	}

	recordAudit(ctx, s.auditRepo, &projectID, &actorID, domain.AuditDelegatesUpdated, map[string]any{
		"doc_type_code": docTypeCode,
		"delegates":     input.UserIDs,
	})
	return nil
}

func (s *projectService) ListDelegates(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentDelegate, error) {
	return s.docRepo.ListDelegates(ctx, projectID, docTypeCode)
}

func (s *projectService) AuditTrail(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.AuditEntry, int, error) {
	return s.auditRepo.ListByProject(ctx, projectID, offset, limit)
}
