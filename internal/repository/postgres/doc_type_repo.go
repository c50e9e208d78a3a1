package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"qtrack/internal/domain"
	"qtrack/internal/port"
)

type docTypeRepo struct {
	db *sqlx.DB
}

// NewDocTypeRepo creates a new PostgreSQL-backed DocumentTypeRepository.
func NewDocTypeRepo(db *sqlx.DB) port.DocumentTypeRepository {
	return &docTypeRepo{db: db}
}

func (r *docTypeRepo) Create(ctx context.Context, docType *domain.DocumentType) error {
	docType.CreatedAt = time.Now().UTC()

	query := `INSERT INTO document_types (id, code, name, mode, sort_order, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		docType.ID, docType.Code, docType.Name, docType.Mode,
		docType.SortOrder, docType.IsActive, docType.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "document_types_code_key") {
			return domain.ErrDuplicateDocType
		}
		return fmt.Errorf("docTypeRepo.Create: %w", err)
	}
	return nil
}

func (r *docTypeRepo) GetByCode(ctx context.Context, code string) (*domain.DocumentType, error) {
	var docType domain.DocumentType
	err := r.db.GetContext(ctx, &docType,
		"SELECT * FROM document_types WHERE UPPER(code) = UPPER($1)", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUnknownDocType
		}
		return nil, fmt.Errorf("docTypeRepo.GetByCode: %w", err)
	}
	return &docType, nil
}

func (r *docTypeRepo) List(ctx context.Context) ([]domain.DocumentType, error) {
	var docTypes []domain.DocumentType
	err := r.db.SelectContext(ctx, &docTypes,
		"SELECT * FROM document_types ORDER BY sort_order, code")
	if err != nil {
		return nil, fmt.Errorf("docTypeRepo.List: %w", err)
	}
	return docTypes, nil
}

func (r *docTypeRepo) ListActive(ctx context.Context) ([]domain.DocumentType, error) {
	var docTypes []domain.DocumentType
	err := r.db.SelectContext(ctx, &docTypes,
		"SELECT * FROM document_types WHERE is_active ORDER BY sort_order, code")
	if err != nil {
		return nil, fmt.Errorf("docTypeRepo.ListActive: %w", err)
	}
	return docTypes, nil
}

func (r *docTypeRepo) Update(ctx context.Context, docType *domain.DocumentType) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE document_types SET name = $1, mode = $2, sort_order = $3, is_active = $4 WHERE id = $5`,
		docType.Name, docType.Mode, docType.SortOrder, docType.IsActive, docType.ID)
	if err != nil {
		return fmt.Errorf("docTypeRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
