package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user of the dashboard.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Project represents a registered manufacturing project. Matching identity
// is (item_name, part_no).
type Project struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	ProjectName string        `db:"project_name" json:"project_name"`
	ItemName    string        `db:"item_name" json:"item_name"`
	PartNo      string        `db:"part_no" json:"part_no"`
	Customer    string        `db:"customer" json:"customer"`
	Status      ProjectStatus `db:"status" json:"status"`
	CreatedBy   uuid.UUID     `db:"created_by" json:"created_by"`
	CompletedAt *time.Time    `db:"completed_at" json:"completed_at"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// DocumentType is one row of the runtime document-type registry. The set of
// required document types is configuration data, never compiled in.
type DocumentType struct {
	ID        uuid.UUID        `db:"id" json:"id"`
	Code      string           `db:"code" json:"code"`
	Name      string           `db:"name" json:"name"`
	Mode      DocumentTypeMode `db:"mode" json:"mode"`
	SortOrder int              `db:"sort_order" json:"sort_order"`
	IsActive  bool             `db:"is_active" json:"is_active"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

// ProjectDocument is the current approved file pointer for a single-file
// document slot. It only exists once at least one upload has been approved.
type ProjectDocument struct {
	ProjectID       uuid.UUID  `db:"project_id" json:"project_id"`
	DocTypeCode     string     `db:"doc_type_code" json:"doc_type_code"`
	CurrentFileKey  string     `db:"current_file_key" json:"current_file_key"`
	CurrentFileName string     `db:"current_file_name" json:"current_file_name"`
	CurrentRevision int        `db:"current_revision" json:"current_revision"`
	ApprovedBy      *uuid.UUID `db:"approved_by" json:"approved_by"`
	ApprovedAt      *time.Time `db:"approved_at" json:"approved_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// DocumentFile is one member of the ordered file set of a multi-file
// document slot. Position is assigned at approval time.
type DocumentFile struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ProjectID   uuid.UUID `db:"project_id" json:"project_id"`
	DocTypeCode string    `db:"doc_type_code" json:"doc_type_code"`
	FileKey     string    `db:"file_key" json:"file_key"`
	FileName    string    `db:"file_name" json:"file_name"`
	Position    int       `db:"position" json:"position"`
	AddedBy     uuid.UUID `db:"added_by" json:"added_by"`
	AddedAt     time.Time `db:"added_at" json:"added_at"`
}

// PendingRevisionSentinel marks an upload that has not been approved yet;
// real revision numbers are assigned at approval time and start at 1.
const PendingRevisionSentinel = -1

// PendingUpload is a submitted file awaiting an approve/reject decision.
type PendingUpload struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	ProjectID      uuid.UUID    `db:"project_id" json:"project_id"`
	DocTypeCode    string       `db:"doc_type_code" json:"doc_type_code"`
	RevisionNumber int          `db:"revision_number" json:"revision_number"`
	FileKey        string       `db:"file_key" json:"file_key"`
	FileName       string       `db:"file_name" json:"file_name"`
	FileSize       int64        `db:"file_size" json:"file_size"`
	UploadedBy     uuid.UUID    `db:"uploaded_by" json:"uploaded_by"`
	Source         UploadSource `db:"source" json:"source"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
}

// DocumentRevision is one approved version of a single-file document slot.
// Revision numbers are strictly increasing and gap-free per slot.
type DocumentRevision struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ProjectID      uuid.UUID `db:"project_id" json:"project_id"`
	DocTypeCode    string    `db:"doc_type_code" json:"doc_type_code"`
	RevisionNumber int       `db:"revision_number" json:"revision_number"`
	FileKey        string    `db:"file_key" json:"file_key"`
	FileName       string    `db:"file_name" json:"file_name"`
	UploadedBy     uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	ApprovedBy     uuid.UUID `db:"approved_by" json:"approved_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// DocumentDelegate assigns a user as an approver for one document slot.
// The ordered set per (project, doc type) is the single source of truth
// for delegation.
type DocumentDelegate struct {
	ProjectID   uuid.UUID `db:"project_id" json:"project_id"`
	DocTypeCode string    `db:"doc_type_code" json:"doc_type_code"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Position    int       `db:"position" json:"position"`
	AssignedBy  uuid.UUID `db:"assigned_by" json:"assigned_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// AuditEntry is one immutable record in the audit log.
type AuditEntry struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	ProjectID *uuid.UUID      `db:"project_id" json:"project_id"`
	UserID    *uuid.UUID      `db:"user_id" json:"user_id"`
	Action    string          `db:"action" json:"action"`
	Details   json.RawMessage `db:"details" json:"details"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// BatchOutcome is the per-file result of one auto-upload batch resolution.
type BatchOutcome struct {
	FileName  string             `json:"file_name"`
	Status    BatchOutcomeStatus `json:"status"`
	ProjectID *uuid.UUID         `json:"project_id,omitempty"`
	Score     float64            `json:"score,omitempty"`
	Revision  float64            `json:"revision,omitempty"`
	Detail    string             `json:"detail,omitempty"`
}
