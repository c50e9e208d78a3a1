package domain

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// ProjectStatus represents the lifecycle of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusComplete  ProjectStatus = "complete"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// IsTerminal reports whether the status admits no further automatic
// transitions.
func (s ProjectStatus) IsTerminal() bool {
	return s == ProjectStatusComplete || s == ProjectStatusCancelled
}

// DocumentTypeMode distinguishes slots that hold one current file with a
// revision history from slots that hold an open-ended file set.
type DocumentTypeMode string

const (
	DocTypeModeSingle DocumentTypeMode = "single"
	DocTypeModeMulti  DocumentTypeMode = "multi"
)

// UploadSource records how a pending upload entered the system.
type UploadSource string

const (
	UploadSourceManual UploadSource = "manual"
	UploadSourceAuto   UploadSource = "auto"
)

// BatchOutcomeStatus is the per-file status of a batch resolution.
type BatchOutcomeStatus string

const (
	BatchOutcomeMatched   BatchOutcomeStatus = "MATCHED"
	BatchOutcomeNoDocType BatchOutcomeStatus = "NO_DOC_TYPE"
	BatchOutcomeNoMatch   BatchOutcomeStatus = "NO_MATCH"
	BatchOutcomeError     BatchOutcomeStatus = "ERROR"
)

// AuditAction enumerates the actions recorded in the audit log.
type AuditAction string

const (
	AuditProjectCreated   AuditAction = "project_created"
	AuditProjectUpdated   AuditAction = "project_updated"
	AuditProjectCompleted AuditAction = "project_completed"
	AuditUploadSubmitted  AuditAction = "upload_submitted"
	AuditUploadMatched    AuditAction = "upload_auto_matched"
	AuditUploadApproved   AuditAction = "upload_approved"
	AuditUploadRejected   AuditAction = "upload_rejected"
	AuditUploadCancelled  AuditAction = "upload_cancelled"
	AuditDelegatesUpdated AuditAction = "delegates_updated"
)

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeXLSX FileType = "xlsx"
	FileTypeDOCX FileType = "docx"
	FileTypeJPG  FileType = "jpg"
	FileTypePNG  FileType = "png"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"xls":  FileTypeXLSX,
	"xlsx": FileTypeXLSX,
	"doc":  FileTypeDOCX,
	"docx": FileTypeDOCX,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// ContentTypes maps FileType to the content type stored alongside the file.
var ContentTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FileTypeDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FileTypeJPG:  "image/jpeg",
	FileTypePNG:  "image/png",
}
