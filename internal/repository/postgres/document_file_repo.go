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

type documentFileRepo struct {
	db *sqlx.DB
}

// NewDocumentFileRepo creates a new PostgreSQL-backed DocumentFileRepository.
func NewDocumentFileRepo(db *sqlx.DB) port.DocumentFileRepository {
	return &documentFileRepo{db: db}
}

func (r *documentFileRepo) Append(ctx context.Context, file *domain.DocumentFile) error {
	file.AddedAt = time.Now().UTC()

	// Position is assigned at insert so the set stays ordered by approval.
	query := `INSERT INTO document_files
		(id, project_id, doc_type_code, file_key, file_name, position, added_by, added_at)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM document_files
			 WHERE project_id = $2 AND doc_type_code = $3),
			$6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		file.ID, file.ProjectID, file.DocTypeCode, file.FileKey, file.FileName,
		file.AddedBy, file.AddedAt)
	if err != nil {
		return fmt.Errorf("documentFileRepo.Append: %w", err)
	}
	return nil
}

func (r *documentFileRepo) ListBySlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentFile, error) {
	var files []domain.DocumentFile
	err := r.db.SelectContext(ctx, &files,
		`SELECT * FROM document_files
		 WHERE project_id = $1 AND doc_type_code = $2
		 ORDER BY position`,
		projectID, docTypeCode)
	if err != nil {
		return nil, fmt.Errorf("documentFileRepo.ListBySlot: %w", err)
	}
	return files, nil
}

func (r *documentFileRepo) CountBySlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM document_files WHERE project_id = $1 AND doc_type_code = $2",
		projectID, docTypeCode)
	if err != nil {
		return 0, fmt.Errorf("documentFileRepo.CountBySlot: %w", err)
	}
	return count, nil
}
