package port

import (
	"context"

	"github.com/google/uuid"

	"qtrack/internal/domain"
)

// AuditRepository defines the contract for audit log persistence.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.AuditEntry, int, error)
}
