package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"qtrack/internal/service"
)

// DocumentHandler handles pending-upload decisions and file access.
type DocumentHandler struct {
	revisionService service.RevisionService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(revisionService service.RevisionService) *DocumentHandler {
	return &DocumentHandler{revisionService: revisionService}
}

// ListPending handles GET /api/v1/pending
func (h *DocumentHandler) ListPending(c *gin.Context) {
	offset, limit := parsePagination(c)

	pendings, total, err := h.revisionService.ListPending(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, pendings, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Approve handles POST /api/v1/pending/:id/approve
func (h *DocumentHandler) Approve(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	pendingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid pending upload ID")
		return
	}

	slot, err := h.revisionService.Approve(c.Request.Context(), pendingID, userID, role)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "upload approved", "slot": slot})
}

// Reject handles POST /api/v1/pending/:id/reject
func (h *DocumentHandler) Reject(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	pendingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid pending upload ID")
		return
	}

	slot, err := h.revisionService.Reject(c.Request.Context(), pendingID, userID, role)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "upload rejected", "slot": slot})
}

// Cancel handles POST /api/v1/pending/:id/cancel
func (h *DocumentHandler) Cancel(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	pendingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid pending upload ID")
		return
	}

	slot, err := h.revisionService.Cancel(c.Request.Context(), pendingID, userID, role)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "upload cancelled", "slot": slot})
}

// FileURL handles GET /api/v1/files/url?key=...
// Returns a short-lived presigned download URL for a stored file.
func (h *DocumentHandler) FileURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "key is required")
		return
	}

	url, err := h.revisionService.FileURL(c.Request.Context(), key)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}
