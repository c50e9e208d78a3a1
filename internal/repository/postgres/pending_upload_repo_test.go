package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qtrack/internal/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestPendingUploadRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingUploadRepo(db)

	pending := &domain.PendingUpload{
		ID:             uuid.New(),
		ProjectID:      uuid.New(),
		DocTypeCode:    "FMEA",
		RevisionNumber: domain.PendingRevisionSentinel,
		FileKey:        "projects/key",
		FileName:       "FMEA BRACKET.pdf",
		FileSize:       64,
		UploadedBy:     uuid.New(),
		Source:         domain.UploadSourceManual,
	}

	mock.ExpectExec("INSERT INTO pending_uploads").
		WithArgs(pending.ID, pending.ProjectID, pending.DocTypeCode, pending.RevisionNumber,
			pending.FileKey, pending.FileName, pending.FileSize,
			pending.UploadedBy, pending.Source, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), pending)

	assert.NoError(t, err)
	assert.False(t, pending.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingUploadRepo_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingUploadRepo(db)

	t.Run("found", func(t *testing.T) {
		pendingID := uuid.New()
		rows := sqlmock.NewRows([]string{
			"id", "project_id", "doc_type_code", "revision_number",
			"file_key", "file_name", "file_size", "uploaded_by", "source", "created_at",
		}).AddRow(pendingID, uuid.New(), "FMEA", -1, "projects/key", "FMEA BRACKET.pdf", 64, uuid.New(), "manual", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM pending_uploads WHERE id =").
			WithArgs(pendingID).
			WillReturnRows(rows)

		pending, err := repo.GetByID(context.Background(), pendingID)

		assert.NoError(t, err)
		require.NotNil(t, pending)
		assert.Equal(t, pendingID, pending.ID)
		assert.Equal(t, domain.PendingRevisionSentinel, pending.RevisionNumber)
	})

	t.Run("not found", func(t *testing.T) {
		pendingID := uuid.New()
		mock.ExpectQuery("SELECT (.+) FROM pending_uploads WHERE id =").
			WithArgs(pendingID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		pending, err := repo.GetByID(context.Background(), pendingID)

		assert.Nil(t, pending)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPendingUploadRepo_ExistsForSlot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingUploadRepo(db)

	projectID := uuid.New()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(projectID, "FMEA").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsForSlot(context.Background(), projectID, "FMEA")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingUploadRepo_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingUploadRepo(db)

	t.Run("deleted", func(t *testing.T) {
		pendingID := uuid.New()
		mock.ExpectExec("DELETE FROM pending_uploads WHERE id =").
			WithArgs(pendingID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), pendingID))
	})

	t.Run("not found", func(t *testing.T) {
		pendingID := uuid.New()
		mock.ExpectExec("DELETE FROM pending_uploads WHERE id =").
			WithArgs(pendingID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), pendingID), domain.ErrNotFound)
	})
}

func TestPendingUploadRepo_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingUploadRepo(db)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT (.+) FROM pending_uploads ORDER BY created_at DESC").
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "project_id", "doc_type_code", "revision_number",
			"file_key", "file_name", "file_size", "uploaded_by", "source", "created_at",
		}).
			AddRow(uuid.New(), uuid.New(), "FMEA", -1, "k1", "a.pdf", 1, uuid.New(), "manual", time.Now()).
			AddRow(uuid.New(), uuid.New(), "MSA", -1, "k2", "b.pdf", 1, uuid.New(), "auto", time.Now()))

	pendings, total, err := repo.List(context.Background(), 0, 20)

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, pendings, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
