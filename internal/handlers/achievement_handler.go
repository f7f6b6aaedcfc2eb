package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-hub/school-service/internal/services"
	"github.com/school-hub/school-service/internal/utils"
	"github.com/school-hub/school-service/internal/validator"
)

type AchievementHandler struct {
	BaseHandler
	service services.AchievementService
	uploads UploadConfig
}

func NewAchievementHandler(service services.AchievementService, uploads UploadConfig, logger utils.Logger) *AchievementHandler {
	return &AchievementHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		uploads:     uploads,
	}
}

// ListAchievements handles GET /api/achievements. The highlight query
// param filters the showcase list.
func (h *AchievementHandler) ListAchievements(c *gin.Context) {
	h.LogRequest(c, "Listing achievements")

	query := services.AchievementListQuery{
		ListQuery: parseListQuery(c),
		Category:  c.Query("category"),
	}
	if highlightStr := c.Query("highlight"); highlightStr != "" {
		highlight := highlightStr == "true"
		query.Highlight = &highlight
	}

	response, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondList(c, response.Achievements, response.ListMeta)
}

// GetAchievement handles GET /api/achievements/:id.
func (h *AchievementHandler) GetAchievement(c *gin.Context) {
	h.LogRequest(c, "Getting achievement")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	achievement, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, achievement)
}

// ListAchievementsByCategory handles GET /api/achievements/category/:category.
func (h *AchievementHandler) ListAchievementsByCategory(c *gin.Context) {
	h.LogRequest(c, "Listing achievements by category")

	query := services.AchievementListQuery{
		ListQuery: parseListQuery(c),
		Category:  c.Param("category"),
	}

	response, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondList(c, response.Achievements, response.ListMeta)
}

// CreateAchievement handles POST /api/achievements/create-achievement
// (multipart, admin).
func (h *AchievementHandler) CreateAchievement(c *gin.Context) {
	h.LogRequest(c, "Creating achievement")

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req validator.AchievementCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	imagePath, err := saveImageUpload(c, h.uploads, "achievements")
	if err != nil {
		h.handleUploadError(c, err)
		return
	}

	achievement, err := h.service.Create(c.Request.Context(), &req, imagePath, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondCreated(c, "Achievement created", achievement)
}

// UpdateAchievement handles PUT /api/achievements/update-achievement/:id (admin).
func (h *AchievementHandler) UpdateAchievement(c *gin.Context) {
	h.LogRequest(c, "Updating achievement")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.AchievementUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	imagePath, err := saveImageUpload(c, h.uploads, "achievements")
	if err != nil {
		h.handleUploadError(c, err)
		return
	}

	achievement, err := h.service.Update(c.Request.Context(), id, &req, imagePath)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, achievement)
}

// DeleteAchievement handles DELETE /api/achievements/delete-achievement/:id (admin).
func (h *AchievementHandler) DeleteAchievement(c *gin.Context) {
	h.LogRequest(c, "Deleting achievement")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondMessage(c, "Achievement deleted")
}

// GetAchievementStats handles GET /api/achievements/stats/overview (admin).
func (h *AchievementHandler) GetAchievementStats(c *gin.Context) {
	h.LogRequest(c, "Getting achievement stats")

	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, stats)
}
