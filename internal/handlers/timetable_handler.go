package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-hub/school-service/internal/services"
	"github.com/school-hub/school-service/internal/utils"
	"github.com/school-hub/school-service/internal/validator"
)

type TimetableHandler struct {
	BaseHandler
	service services.TimetableService
}

func NewTimetableHandler(service services.TimetableService, logger utils.Logger) *TimetableHandler {
	return &TimetableHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListGrades handles GET /api/timetable/grades.
func (h *TimetableHandler) ListGrades(c *gin.Context) {
	h.LogRequest(c, "Listing grades")

	grades, err := h.service.ListGrades(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, grades)
}

// GetGradeTimetable handles GET /api/timetable/grade/:grade.
func (h *TimetableHandler) GetGradeTimetable(c *gin.Context) {
	h.LogRequest(c, "Getting grade timetable")

	timetable, err := h.service.GetGradeTimetable(c.Request.Context(), c.Param("grade"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, timetable)
}

// CreateGrade handles POST /api/timetable/create-grade (admin).
func (h *TimetableHandler) CreateGrade(c *gin.Context) {
	h.LogRequest(c, "Creating grade")

	var req validator.GradeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	grade, err := h.service.CreateGrade(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondCreated(c, "Grade created", grade)
}

// UpdateSlot handles POST /api/timetable/update-slot (admin).
func (h *TimetableHandler) UpdateSlot(c *gin.Context) {
	h.LogRequest(c, "Updating timetable slot")

	var req validator.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	slot, err := h.service.UpdateSlot(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, slot)
}

// ClearSlot handles POST /api/timetable/clear-slot (admin).
func (h *TimetableHandler) ClearSlot(c *gin.Context) {
	h.LogRequest(c, "Clearing timetable slot")

	var req validator.ClearSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.service.ClearSlot(c.Request.Context(), &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondMessage(c, "Timetable slot cleared")
}
