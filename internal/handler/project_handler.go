package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"qtrack/internal/service"
)

// ProjectHandler handles project management endpoints.
type ProjectHandler struct {
	projectService  service.ProjectService
	revisionService service.RevisionService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService service.ProjectService, revisionService service.RevisionService) *ProjectHandler {
	return &ProjectHandler{
		projectService:  projectService,
		revisionService: revisionService,
	}
}

// Create handles POST /api/v1/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, project)
}

// List handles GET /api/v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	projects, total, err := h.projectService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, projects, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), projectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, project)
}

// Update handles PUT /api/v1/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	var input service.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), userID, projectID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, project)
}

// Cancel handles POST /api/v1/projects/:id/cancel
func (h *ProjectHandler) Cancel(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	if err := h.projectService.Cancel(c.Request.Context(), userID, projectID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "project cancelled"})
}

// Delete handles DELETE /api/v1/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), projectID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "project deleted"})
}

// Documents handles GET /api/v1/projects/:id/documents
func (h *ProjectHandler) Documents(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	docs, err := h.revisionService.ProjectDocuments(c.Request.Context(), projectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, docs)
}

// Pending handles GET /api/v1/projects/:id/pending
func (h *ProjectHandler) Pending(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	pendings, err := h.revisionService.ListPendingByProject(c.Request.Context(), projectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, pendings)
}

// Slot handles GET /api/v1/projects/:id/slots/:code
func (h *ProjectHandler) Slot(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	state, err := h.revisionService.Slot(c.Request.Context(), projectID, c.Param("code"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// Revisions handles GET /api/v1/projects/:id/slots/:code/revisions
func (h *ProjectHandler) Revisions(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	revisions, err := h.revisionService.Revisions(c.Request.Context(), projectID, c.Param("code"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, revisions)
}

// SetDelegates handles PUT /api/v1/projects/:id/slots/:code/delegates
func (h *ProjectHandler) SetDelegates(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	var input service.SetDelegatesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.projectService.SetDelegates(c.Request.Context(), userID, projectID, c.Param("code"), input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "delegates updated"})
}

// ListDelegates handles GET /api/v1/projects/:id/slots/:code/delegates
func (h *ProjectHandler) ListDelegates(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	delegates, err := h.projectService.ListDelegates(c.Request.Context(), projectID, c.Param("code"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, delegates)
}

// AuditTrail handles GET /api/v1/projects/:id/audit
func (h *ProjectHandler) AuditTrail(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	offset, limit := parsePagination(c)
	entries, total, err := h.projectService.AuditTrail(c.Request.Context(), projectID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, entries, PagMeta{Total: total, Offset: offset, Limit: limit})
}
