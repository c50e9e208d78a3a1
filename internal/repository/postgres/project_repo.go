package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"qtrack/internal/domain"
	"qtrack/internal/port"
)

type projectRepo struct {
	db *sqlx.DB
}

// NewProjectRepo creates a new PostgreSQL-backed ProjectRepository.
func NewProjectRepo(db *sqlx.DB) port.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	query := `INSERT INTO projects
		(id, project_name, item_name, part_no, customer, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.ProjectName, project.ItemName, project.PartNo,
		project.Customer, project.Status, project.CreatedBy, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "projects_item_part_key") {
			return domain.ErrDuplicateProjectPart
		}
		return fmt.Errorf("projectRepo.Create: %w", err)
	}
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.GetContext(ctx, &project,
		"SELECT * FROM projects WHERE id = $1", projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("projectRepo.GetByID: %w", err)
	}
	return &project, nil
}

func (r *projectRepo) List(ctx context.Context, offset, limit int) ([]domain.Project, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM projects")
	if err != nil {
		return nil, 0, fmt.Errorf("projectRepo.List count: %w", err)
	}

	var projects []domain.Project
	err = r.db.SelectContext(ctx, &projects,
		`SELECT * FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("projectRepo.List: %w", err)
	}
	return projects, total, nil
}

func (r *projectRepo) ListAll(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.SelectContext(ctx, &projects,
		"SELECT * FROM projects ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("projectRepo.ListAll: %w", err)
	}
	return projects, nil
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	project.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`UPDATE projects
		 SET project_name = $1, item_name = $2, part_no = $3, customer = $4,
		     status = $5, completed_at = $6, updated_at = $7
		 WHERE id = $8`,
		project.ProjectName, project.ItemName, project.PartNo, project.Customer,
		project.Status, project.CompletedAt, project.UpdatedAt, project.ID)
	if err != nil {
		return fmt.Errorf("projectRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) UpdateStatus(ctx context.Context, projectID uuid.UUID, status domain.ProjectStatus) error {
	now := time.Now().UTC()
	var completedAt *time.Time
	if status == domain.ProjectStatusComplete {
		completedAt = &now
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE projects SET status = $1, completed_at = $2, updated_at = $3 WHERE id = $4`,
		status, completedAt, now, projectID)
	if err != nil {
		return fmt.Errorf("projectRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, projectID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", projectID)
	if err != nil {
		return fmt.Errorf("projectRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
