package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"qtrack/internal/domain"
	"qtrack/internal/port"
)

type auditRepo struct {
	db *sqlx.DB
}

// NewAuditRepo creates a new PostgreSQL-backed AuditRepository.
func NewAuditRepo(db *sqlx.DB) port.AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) Create(ctx context.Context, entry *domain.AuditEntry) error {
	entry.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (id, project_id, user_id, action, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.ProjectID, entry.UserID, entry.Action, entry.Details, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("auditRepo.Create: %w", err)
	}
	return nil
}

func (r *auditRepo) ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.AuditEntry, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM audit_log WHERE project_id = $1", projectID)
	if err != nil {
		return nil, 0, fmt.Errorf("auditRepo.ListByProject count: %w", err)
	}

	var entries []domain.AuditEntry
	err = r.db.SelectContext(ctx, &entries,
		`SELECT * FROM audit_log
		 WHERE project_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		projectID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("auditRepo.ListByProject: %w", err)
	}
	return entries, total, nil
}
