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

type projectDocumentRepo struct {
	db *sqlx.DB
}

// NewProjectDocumentRepo creates a new PostgreSQL-backed ProjectDocumentRepository.
func NewProjectDocumentRepo(db *sqlx.DB) port.ProjectDocumentRepository {
	return &projectDocumentRepo{db: db}
}

func (r *projectDocumentRepo) Upsert(ctx context.Context, doc *domain.ProjectDocument) error {
	doc.UpdatedAt = time.Now().UTC()

	query := `INSERT INTO project_documents
		(project_id, doc_type_code, current_file_key, current_file_name, current_revision, approved_by, approved_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (project_id, doc_type_code) DO UPDATE SET
			current_file_key = EXCLUDED.current_file_key,
			current_file_name = EXCLUDED.current_file_name,
			current_revision = EXCLUDED.current_revision,
			approved_by = EXCLUDED.approved_by,
			approved_at = EXCLUDED.approved_at,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		doc.ProjectID, doc.DocTypeCode, doc.CurrentFileKey, doc.CurrentFileName,
		doc.CurrentRevision, doc.ApprovedBy, doc.ApprovedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("projectDocumentRepo.Upsert: %w", err)
	}
	return nil
}

func (r *projectDocumentRepo) Get(ctx context.Context, projectID uuid.UUID, docTypeCode string) (*domain.ProjectDocument, error) {
	var doc domain.ProjectDocument
	err := r.db.GetContext(ctx, &doc,
		"SELECT * FROM project_documents WHERE project_id = $1 AND doc_type_code = $2",
		projectID, docTypeCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("projectDocumentRepo.Get: %w", err)
	}
	return &doc, nil
}

func (r *projectDocumentRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectDocument, error) {
	var docs []domain.ProjectDocument
	err := r.db.SelectContext(ctx, &docs,
		"SELECT * FROM project_documents WHERE project_id = $1 ORDER BY doc_type_code", projectID)
	if err != nil {
		return nil, fmt.Errorf("projectDocumentRepo.ListByProject: %w", err)
	}
	return docs, nil
}

// SetDelegates replaces the ordered delegate set for a slot in one
// transaction.
func (r *projectDocumentRepo) SetDelegates(ctx context.Context, projectID uuid.UUID, docTypeCode string, userIDs []uuid.UUID, assignedBy uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("projectDocumentRepo.SetDelegates begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"DELETE FROM document_delegates WHERE project_id = $1 AND doc_type_code = $2",
		projectID, docTypeCode)
	if err != nil {
		return fmt.Errorf("projectDocumentRepo.SetDelegates delete: %w", err)
	}

	now := time.Now().UTC()
	for i, userID := range userIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO document_delegates (project_id, doc_type_code, user_id, position, assigned_by, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			projectID, docTypeCode, userID, i+1, assignedBy, now)
		if err != nil {
			return fmt.Errorf("projectDocumentRepo.SetDelegates insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("projectDocumentRepo.SetDelegates commit: %w", err)
	}
	return nil
}

func (r *projectDocumentRepo) ListDelegates(ctx context.Context, projectID uuid.UUID, docTypeCode string) ([]domain.DocumentDelegate, error) {
	var delegates []domain.DocumentDelegate
	err := r.db.SelectContext(ctx, &delegates,
		`SELECT * FROM document_delegates
		 WHERE project_id = $1 AND doc_type_code = $2
		 ORDER BY position`,
		projectID, docTypeCode)
	if err != nil {
		return nil, fmt.Errorf("projectDocumentRepo.ListDelegates: %w", err)
	}
	return delegates, nil
}
