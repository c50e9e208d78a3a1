package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"qtrack/internal/service"
)

// DocTypeHandler handles the document-type registry endpoints.
type DocTypeHandler struct {
	docTypeService service.DocTypeService
}

// NewDocTypeHandler creates a new DocTypeHandler.
func NewDocTypeHandler(docTypeService service.DocTypeService) *DocTypeHandler {
	return &DocTypeHandler{docTypeService: docTypeService}
}

// Create handles POST /api/v1/doc-types
func (h *DocTypeHandler) Create(c *gin.Context) {
	var input service.CreateDocTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	docType, err := h.docTypeService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, docType)
}

// List handles GET /api/v1/doc-types. Pass ?active=true for active types only.
func (h *DocTypeHandler) List(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))

	var err error
	var docTypes interface{}
	if activeOnly {
		docTypes, err = h.docTypeService.ListActive(c.Request.Context())
	} else {
		docTypes, err = h.docTypeService.List(c.Request.Context())
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, docTypes)
}

// GetByCode handles GET /api/v1/doc-types/:code
func (h *DocTypeHandler) GetByCode(c *gin.Context) {
	docType, err := h.docTypeService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, docType)
}

// Update handles PUT /api/v1/doc-types/:code
func (h *DocTypeHandler) Update(c *gin.Context) {
	var input service.UpdateDocTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	docType, err := h.docTypeService.Update(c.Request.Context(), c.Param("code"), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, docType)
}
