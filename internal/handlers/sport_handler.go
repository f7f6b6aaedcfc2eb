package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-hub/school-service/internal/services"
	"github.com/school-hub/school-service/internal/utils"
	"github.com/school-hub/school-service/internal/validator"
)

type SportHandler struct {
	BaseHandler
	service services.SportService
}

func NewSportHandler(service services.SportService, logger utils.Logger) *SportHandler {
	return &SportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListSports handles GET /api/sports.
func (h *SportHandler) ListSports(c *gin.Context) {
	h.LogRequest(c, "Listing sports")

	query := services.SportListQuery{
		ListQuery: parseListQuery(c),
		Category:  c.Query("category"),
		Status:    c.Query("status"),
	}

	response, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondList(c, response.Sports, response.ListMeta)
}

// GetSport handles GET /api/sports/:id.
func (h *SportHandler) GetSport(c *gin.Context) {
	h.LogRequest(c, "Getting sport")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	sport, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, sport)
}

// ListSportsByStatus handles GET /api/sports/status/:status.
func (h *SportHandler) ListSportsByStatus(c *gin.Context) {
	h.LogRequest(c, "Listing sports by status")

	query := services.SportListQuery{
		ListQuery: parseListQuery(c),
		Status:    c.Param("status"),
	}

	response, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondList(c, response.Sports, response.ListMeta)
}

// ListSportsByCategory handles GET /api/sports/category/:category.
func (h *SportHandler) ListSportsByCategory(c *gin.Context) {
	h.LogRequest(c, "Listing sports by category")

	query := services.SportListQuery{
		ListQuery: parseListQuery(c),
		Category:  c.Param("category"),
	}

	response, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondList(c, response.Sports, response.ListMeta)
}

// CreateSport handles POST /api/sports/create-sport (admin).
func (h *SportHandler) CreateSport(c *gin.Context) {
	h.LogRequest(c, "Creating sport")

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req validator.SportCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	sport, err := h.service.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondCreated(c, "Sport created", sport)
}

// UpdateSport handles PUT /api/sports/update-sport/:id (admin).
func (h *SportHandler) UpdateSport(c *gin.Context) {
	h.LogRequest(c, "Updating sport")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.SportUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	sport, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, sport)
}

// DeleteSport handles DELETE /api/sports/delete-sport/:id (admin).
func (h *SportHandler) DeleteSport(c *gin.Context) {
	h.LogRequest(c, "Deleting sport")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondMessage(c, "Sport deleted")
}

// GetSportStats handles GET /api/sports/stats/overview (admin).
func (h *SportHandler) GetSportStats(c *gin.Context) {
	h.LogRequest(c, "Getting sport stats")

	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, stats)
}
