package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"qtrack/internal/domain"
	"qtrack/internal/service"
)

// UploadHandler handles auto-upload batches and manual uploads.
type UploadHandler struct {
	uploadService   service.UploadService
	revisionService service.RevisionService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService, revisionService service.RevisionService) *UploadHandler {
	return &UploadHandler{
		uploadService:   uploadService,
		revisionService: revisionService,
	}
}

// Batch handles POST /api/v1/uploads/batch. Every file in the multipart
// form is parsed, matched, and submitted; the response carries a per-file
// outcome regardless of partial failures.
func (h *UploadHandler) Batch(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid multipart form")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "no files in request")
		return
	}

	files := make([]service.BatchFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable file: "+fh.Filename)
			return
		}
		defer f.Close()
		files = append(files, service.BatchFile{
			Name:    fh.Filename,
			Content: f,
			Size:    fh.Size,
		})
	}

	outcomes, err := h.uploadService.ResolveBatch(c.Request.Context(), files, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, outcomes)
}

// Manual handles POST /api/v1/uploads/manual. The uploader names the target
// project and document type explicitly; no filename matching is involved.
func (h *UploadHandler) Manual(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.PostForm("project_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}
	docTypeCode := c.PostForm("doc_type_code")
	if docTypeCode == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "doc_type_code is required")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable file")
		return
	}
	defer f.Close()

	pending, err := h.revisionService.SubmitPending(c.Request.Context(), service.SubmitPendingInput{
		ProjectID:   projectID,
		DocTypeCode: docTypeCode,
		FileName:    fh.Filename,
		Content:     f,
		Size:        fh.Size,
		UploadedBy:  userID,
		Source:      domain.UploadSourceManual,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, pending)
}

// Preview handles GET /api/v1/uploads/preview?filename=...
// Returns the parsed identity and candidate projects without submitting.
func (h *UploadHandler) Preview(c *gin.Context) {
	filename := c.Query("filename")
	if filename == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "filename is required")
		return
	}

	parsed, candidates, err := h.uploadService.MatchPreview(c.Request.Context(), filename)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"parsed":     parsed,
		"candidates": candidates,
	})
}
