package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"qtrack/internal/domain"
	"qtrack/internal/port"
)

type pendingUploadRepo struct {
	db *sqlx.DB
}

// NewPendingUploadRepo creates a new PostgreSQL-backed PendingUploadRepository.
func NewPendingUploadRepo(db *sqlx.DB) port.PendingUploadRepository {
	return &pendingUploadRepo{db: db}
}

func (r *pendingUploadRepo) Create(ctx context.Context, pending *domain.PendingUpload) error {
	pending.CreatedAt = time.Now().UTC()

	query := `INSERT INTO pending_uploads
		(id, project_id, doc_type_code, revision_number, file_key, file_name, file_size, uploaded_by, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		pending.ID, pending.ProjectID, pending.DocTypeCode, pending.RevisionNumber,
		pending.FileKey, pending.FileName, pending.FileSize,
		pending.UploadedBy, pending.Source, pending.CreatedAt)
	if err != nil {
		return fmt.Errorf("pendingUploadRepo.Create: %w", err)
	}
	return nil
}

func (r *pendingUploadRepo) GetByID(ctx context.Context, pendingID uuid.UUID) (*domain.PendingUpload, error) {
	var pending domain.PendingUpload
	err := r.db.GetContext(ctx, &pending,
		"SELECT * FROM pending_uploads WHERE id = $1", pendingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("pendingUploadRepo.GetByID: %w", err)
	}
	return &pending, nil
}

func (r *pendingUploadRepo) ExistsForSlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM pending_uploads WHERE project_id = $1 AND doc_type_code = $2)",
		projectID, docTypeCode)
	if err != nil {
		return false, fmt.Errorf("pendingUploadRepo.ExistsForSlot: %w", err)
	}
	return exists, nil
}

func (r *pendingUploadRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.PendingUpload, error) {
	var pendings []domain.PendingUpload
	err := r.db.SelectContext(ctx, &pendings,
		"SELECT * FROM pending_uploads WHERE project_id = $1 ORDER BY created_at", projectID)
	if err != nil {
		return nil, fmt.Errorf("pendingUploadRepo.ListByProject: %w", err)
	}
	return pendings, nil
}

func (r *pendingUploadRepo) ListBySlot(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.PendingUpload, error) {
	var pendings []domain.PendingUpload
	err := r.db.SelectContext(ctx, &pendings,
		"SELECT * FROM pending_uploads WHERE project_id = $1 AND doc_type_code = $2 ORDER BY created_at",
		projectID, docTypeCode)
	if err != nil {
		return nil, fmt.Errorf("pendingUploadRepo.ListBySlot: %w", err)
	}
	return pendings, nil
}

func (r *pendingUploadRepo) List(ctx context.Context, offset, limit int) ([]domain.PendingUpload, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM pending_uploads")
	if err != nil {
		return nil, 0, fmt.Errorf("pendingUploadRepo.List count: %w", err)
	}

	var pendings []domain.PendingUpload
	err = r.db.SelectContext(ctx, &pendings,
		"SELECT * FROM pending_uploads ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("pendingUploadRepo.List: %w", err)
	}
	return pendings, total, nil
}

func (r *pendingUploadRepo) Delete(ctx context.Context, pendingID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM pending_uploads WHERE id = $1", pendingID)
	if err != nil {
		return fmt.Errorf("pendingUploadRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
