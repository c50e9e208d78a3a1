package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("file upload to storage failed")
	ErrUnknownDocType       = errors.New("unknown document type")
	ErrDuplicateDocType     = errors.New("document type code already exists")
	ErrPendingUploadExists  = errors.New("slot already has a pending upload awaiting decision")
	ErrProjectNotActive     = errors.New("project is not active")
	ErrDuplicateProjectPart = errors.New("project with this item name and part number already exists")
)
