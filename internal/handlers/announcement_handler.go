package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/services"
	"github.com/school-hub/school-service/internal/utils"
	"github.com/school-hub/school-service/internal/validator"
)

type AnnouncementHandler struct {
	BaseHandler
	service services.AnnouncementService
}

func NewAnnouncementHandler(service services.AnnouncementService, logger utils.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListAnnouncements handles GET /api/announcements (admin view, shows
// inactive and expired rows too).
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	h.LogRequest(c, "Listing announcements")

	query := services.AnnouncementListQuery{
		ListQuery:  parseListQuery(c),
		Type:       c.Query("type"),
		ActiveOnly: c.Query("active_only") == "true",
	}

	response, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondList(c, response.Announcements, response.ListMeta)
}

// GetAnnouncement handles GET /api/announcements/:id.
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	h.LogRequest(c, "Getting announcement")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	announcement, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, announcement)
}

// GetActiveAnnouncements handles GET /api/announcements/active: the
// audience-filtered view for the authenticated user's role.
func (h *AnnouncementHandler) GetActiveAnnouncements(c *gin.Context) {
	h.LogRequest(c, "Getting active announcements")

	role := models.RoleUser
	if value, exists := c.Get("user_role"); exists {
		if r, ok := value.(models.UserRole); ok {
			role = r
		}
	}

	announcements, err := h.service.GetActiveForRole(c.Request.Context(), role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, announcements)
}

// CreateAnnouncement handles POST /api/announcements/create-announcement (admin).
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	h.LogRequest(c, "Creating announcement")

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req validator.AnnouncementCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	announcement, err := h.service.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondCreated(c, "Announcement created", announcement)
}

// UpdateAnnouncement handles PUT /api/announcements/update-announcement/:id (admin).
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	h.LogRequest(c, "Updating announcement")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.AnnouncementUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	announcement, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, announcement)
}

// DeleteAnnouncement handles DELETE /api/announcements/delete-announcement/:id (admin).
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	h.LogRequest(c, "Deleting announcement")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondMessage(c, "Announcement deleted")
}

// GetAnnouncementStats handles GET /api/announcements/stats/overview (admin).
func (h *AnnouncementHandler) GetAnnouncementStats(c *gin.Context) {
	h.LogRequest(c, "Getting announcement stats")

	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, stats)
}
