package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/school-hub/school-service/internal/services"
	"github.com/school-hub/school-service/internal/utils"
	"github.com/school-hub/school-service/internal/validator"
)

type EventHandler struct {
	BaseHandler
	service services.EventService
	uploads UploadConfig
}

func NewEventHandler(service services.EventService, uploads UploadConfig, logger utils.Logger) *EventHandler {
	return &EventHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		uploads:     uploads,
	}
}

// ListEvents handles GET /api/events with category/status/search filters.
func (h *EventHandler) ListEvents(c *gin.Context) {
	h.LogRequest(c, "Listing events")

	query := services.EventListQuery{
		ListQuery: parseListQuery(c),
		Category:  c.Query("category"),
		Status:    c.Query("status"),
	}

	response, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondList(c, response.Events, response.ListMeta)
}

// GetEvent handles GET /api/events/:id.
func (h *EventHandler) GetEvent(c *gin.Context) {
	h.LogRequest(c, "Getting event")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, event)
}

// ListEventsByStatus handles GET /api/events/status/:status.
func (h *EventHandler) ListEventsByStatus(c *gin.Context) {
	h.LogRequest(c, "Listing events by status")

	query := services.EventListQuery{
		ListQuery: parseListQuery(c),
		Status:    c.Param("status"),
	}

	response, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondList(c, response.Events, response.ListMeta)
}

// ListEventsByCategory handles GET /api/events/category/:category.
func (h *EventHandler) ListEventsByCategory(c *gin.Context) {
	h.LogRequest(c, "Listing events by category")

	query := services.EventListQuery{
		ListQuery: parseListQuery(c),
		Category:  c.Param("category"),
	}

	response, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondList(c, response.Events, response.ListMeta)
}

// CreateEvent handles POST /api/events/create-event (multipart, admin).
func (h *EventHandler) CreateEvent(c *gin.Context) {
	h.LogRequest(c, "Creating event")

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req validator.EventCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	imagePath, err := saveImageUpload(c, h.uploads, "events")
	if err != nil {
		h.handleUploadError(c, err)
		return
	}

	event, err := h.service.Create(c.Request.Context(), &req, imagePath, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondCreated(c, "Event created", event)
}

// UpdateEvent handles PUT /api/events/update-event/:id (admin).
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	h.LogRequest(c, "Updating event")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.EventUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	imagePath, err := saveImageUpload(c, h.uploads, "events")
	if err != nil {
		h.handleUploadError(c, err)
		return
	}

	event, err := h.service.Update(c.Request.Context(), id, &req, imagePath)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, event)
}

// DeleteEvent handles DELETE /api/events/delete-event/:id (admin).
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	h.LogRequest(c, "Deleting event")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondMessage(c, "Event deleted")
}

// GetEventStats handles GET /api/events/stats/overview (admin).
func (h *EventHandler) GetEventStats(c *gin.Context) {
	h.LogRequest(c, "Getting event stats")

	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, stats)
}

func (h *BaseHandler) handleUploadError(c *gin.Context, err error) {
	if errors.Is(err, errInvalidUpload) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid upload",
			Details: err.Error(),
		})
		return
	}
	h.LogError(c, err, "Upload failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "Internal server error",
	})
}

// parseListQuery reads the shared page/limit/search/sort query params.
func parseListQuery(c *gin.Context) services.ListQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}

	return services.ListQuery{
		Page:      page,
		Size:      size,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Search:    c.Query("search"),
	}
}
