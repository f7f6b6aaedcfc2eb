package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-hub/school-service/internal/services"
	"github.com/school-hub/school-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	BaseHandler
	service services.ExportService
}

func NewReportHandler(service services.ExportService, logger utils.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ExportStudents handles GET /api/reports/students.xlsx (admin).
func (h *ReportHandler) ExportStudents(c *gin.Context) {
	h.LogRequest(c, "Exporting students report")

	content, filename, err := h.service.ExportStudents(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}

// ExportEvents handles GET /api/reports/events.xlsx (admin).
func (h *ReportHandler) ExportEvents(c *gin.Context) {
	h.LogRequest(c, "Exporting events report")

	content, filename, err := h.service.ExportEvents(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}
