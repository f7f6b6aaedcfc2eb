package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/services"
	"github.com/school-hub/school-service/internal/utils"
	"github.com/school-hub/school-service/internal/validator"
)

type NotificationHandler struct {
	BaseHandler
	service services.NotificationService
}

func NewNotificationHandler(service services.NotificationService, logger utils.Logger) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListNotifications handles GET /api/notifications (admin view).
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	h.LogRequest(c, "Listing notifications")

	query := services.NotificationListQuery{
		ListQuery:  parseListQuery(c),
		Priority:   c.Query("priority"),
		ActiveOnly: c.Query("active_only") == "true",
	}

	response, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondList(c, response.Notifications, response.ListMeta)
}

// GetNotification handles GET /api/notifications/:id.
func (h *NotificationHandler) GetNotification(c *gin.Context) {
	h.LogRequest(c, "Getting notification")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	notification, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, notification)
}

// GetActiveNotifications handles GET /api/notifications/active: unread,
// unexpired notifications addressed to the caller's role.
func (h *NotificationHandler) GetActiveNotifications(c *gin.Context) {
	h.LogRequest(c, "Getting active notifications")

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	role := models.RoleUser
	if value, exists := c.Get("user_role"); exists {
		if r, roleOK := value.(models.UserRole); roleOK {
			role = r
		}
	}

	notifications, err := h.service.GetActiveForUser(c.Request.Context(), userID, role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, notifications)
}

// MarkNotificationRead handles POST /api/notifications/:id/mark-read.
// Re-marking is a no-op.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	h.LogRequest(c, "Marking notification read")

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id, userID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondMessage(c, "Notification marked read")
}

// CreateNotification handles POST /api/notifications/create-notification (admin).
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	h.LogRequest(c, "Creating notification")

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req validator.NotificationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	notification, err := h.service.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondCreated(c, "Notification created", notification)
}

// UpdateNotification handles PUT /api/notifications/update-notification/:id (admin).
func (h *NotificationHandler) UpdateNotification(c *gin.Context) {
	h.LogRequest(c, "Updating notification")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.NotificationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	notification, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, notification)
}

// DeleteNotification handles DELETE /api/notifications/delete-notification/:id (admin).
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	h.LogRequest(c, "Deleting notification")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondMessage(c, "Notification deleted")
}

// GetNotificationStats handles GET /api/notifications/stats/overview (admin).
func (h *NotificationHandler) GetNotificationStats(c *gin.Context) {
	h.LogRequest(c, "Getting notification stats")

	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, stats)
}
