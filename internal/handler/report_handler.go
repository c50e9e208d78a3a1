package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"qtrack/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles completion-report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Completion handles GET /api/v1/reports/completion
func (h *ReportHandler) Completion(c *gin.Context) {
	report, err := h.reportService.Completion(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// ExportXLSX handles GET /api/v1/reports/completion/export
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	data, filename, err := h.reportService.ExportXLSX(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
