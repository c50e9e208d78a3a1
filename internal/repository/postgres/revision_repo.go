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

type revisionRepo struct {
	db *sqlx.DB
}

// NewRevisionRepo creates a new PostgreSQL-backed RevisionRepository.
func NewRevisionRepo(db *sqlx.DB) port.RevisionRepository {
	return &revisionRepo{db: db}
}

func (r *revisionRepo) Create(ctx context.Context, revision *domain.DocumentRevision) error {
	revision.CreatedAt = time.Now().UTC()

	query := `INSERT INTO document_revisions
		(id, project_id, doc_type_code, revision_number, file_key, file_name, uploaded_by, approved_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		revision.ID, revision.ProjectID, revision.DocTypeCode, revision.RevisionNumber,
		revision.FileKey, revision.FileName, revision.UploadedBy, revision.ApprovedBy, revision.CreatedAt)
	if err != nil {
		return fmt.Errorf("revisionRepo.Create: %w", err)
	}
	return nil
}

func (r *revisionRepo) MaxRevision(ctx context.Context, projectID uuid.UUID, docTypeCode string) (int, error) {
	var max int
	err := r.db.GetContext(ctx, &max,
		`SELECT COALESCE(MAX(revision_number), 0) FROM document_revisions
		 WHERE project_id = $1 AND doc_type_code = $2`,
		projectID, docTypeCode)
	if err != nil {
		return 0, fmt.Errorf("revisionRepo.MaxRevision: %w", err)
	}
	return max, nil
}

func (r *revisionRepo) ListBySlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentRevision, error) {
	var revisions []domain.DocumentRevision
	err := r.db.SelectContext(ctx, &revisions,
		`SELECT * FROM document_revisions
		 WHERE project_id = $1 AND doc_type_code = $2
		 ORDER BY revision_number DESC`,
		projectID, docTypeCode)
	if err != nil {
		return nil, fmt.Errorf("revisionRepo.ListBySlot: %w", err)
	}
	return revisions, nil
}
