package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-hub/school-service/internal/services"
)

// SuccessResponse is the envelope for single-object replies.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// ListResponse is the envelope for paginated listings.
type ListResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Pages   int         `json:"pages"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Message: message, Data: data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: message})
}

func respondList(c *gin.Context, data interface{}, meta services.ListMeta) {
	c.JSON(http.StatusOK, ListResponse{
		Success: true,
		Data:    data,
		Total:   meta.Total,
		Page:    meta.Page,
		Pages:   meta.TotalPages,
	})
}
