package port

import (
	"context"

	"github.com/google/uuid"

	"qtrack/internal/domain"
)

// PendingUploadRepository defines the contract for pending upload
// persistence.
type PendingUploadRepository interface {
	Create(ctx context.Context, pending *domain.PendingUpload) error
	GetByID(ctx context.Context, pendingID uuid.UUID) (*domain.PendingUpload, error)
	ExistsForSlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) (bool, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.PendingUpload, error)
	ListBySlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.PendingUpload, error)
	List(ctx context.Context, offset, limit int) ([]domain.PendingUpload, int, error)
	Delete(ctx context.Context, pendingID uuid.UUID) error
}

// RevisionRepository defines the contract for the append-only revision log
// of single-file document slots.
type RevisionRepository interface {
	Create(ctx context.Context, revision *domain.DocumentRevision) error
	// MaxRevision returns the highest revision number for a slot, or 0
	// when the slot has no approved revisions yet.
	MaxRevision(ctx context.Context, projectID uuid.UUID, docTypeCode string) (int, error)
	ListBySlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentRevision, error)
}

// ProjectDocumentRepository defines the contract for the current-file
// pointer of single-file slots and for per-slot delegate sets.
type ProjectDocumentRepository interface {
	Upsert(ctx context.Context, doc *domain.ProjectDocument) error
	Get(ctx context.Context, projectID uuid.UUID, docTypeCode string) (*domain.ProjectDocument, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectDocument, error)
	SetDelegates(ctx context.Context, projectID uuid.UUID, docTypeCode string, userIDs []uuid.UUID, assignedBy uuid.UUID) error
	ListDelegates(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentDelegate, error)
}

// DocumentFileRepository defines the contract for the ordered file sets of
// multi-file document slots.
type DocumentFileRepository interface {
	Append(ctx context.Context, file *domain.DocumentFile) error
	ListBySlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentFile, error)
	CountBySlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) (int, error)
}
