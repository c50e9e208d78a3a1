package port

import (
	"context"

	"github.com/google/uuid"

	"qtrack/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// ProjectRepository defines the contract for project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int, error)
	// ListAll returns every project without pagination; the matcher scores
	// against this snapshot.
	ListAll(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	UpdateStatus(ctx context.Context, projectID uuid.UUID, status domain.ProjectStatus) error
	Delete(ctx context.Context, projectID uuid.UUID) error
}

// DocumentTypeRepository defines the contract for the runtime
// document-type registry.
type DocumentTypeRepository interface {
	Create(ctx context.Context, docType *domain.DocumentType) error
	GetByCode(ctx context.Context, code string) (*domain.DocumentType, error)
	List(ctx context.Context) ([]domain.DocumentType, error)
	ListActive(ctx context.Context) ([]domain.DocumentType, error)
	Update(ctx context.Context, docType *domain.DocumentType) error
}
