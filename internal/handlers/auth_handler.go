package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/services"
	"github.com/school-hub/school-service/internal/utils"
	"github.com/school-hub/school-service/internal/validator"
)

type AuthHandler struct {
	BaseHandler
	service services.AuthService
}

func NewAuthHandler(service services.AuthService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Signup handles POST /api/auth/signup. New accounts always get the
// user role.
func (h *AuthHandler) Signup(c *gin.Context) {
	h.LogRequest(c, "Signing up user")

	var req validator.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	response, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondCreated(c, "Account created", response)
}

// Signin handles POST /api/auth/signin.
func (h *AuthHandler) Signin(c *gin.Context) {
	h.LogRequest(c, "Signing in user")

	var req validator.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	response, err := h.service.Signin(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, response)
}

// Me handles GET /api/auth/me: the profile behind the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	h.LogRequest(c, "Getting current user")

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, user)
}

// ListUsers handles GET /api/auth/users (admin).
func (h *AuthHandler) ListUsers(c *gin.Context) {
	h.LogRequest(c, "Listing users")

	query := services.UserListQuery{
		ListQuery: parseListQuery(c),
		Role:      c.Query("role"),
	}

	response, err := h.service.ListUsers(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondList(c, response.Users, response.ListMeta)
}

// UpdateUserRole handles PUT /api/auth/:userId/role (admin).
func (h *AuthHandler) UpdateUserRole(c *gin.Context) {
	h.LogRequest(c, "Updating user role")

	userID, ok := h.parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req validator.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	user, err := h.service.UpdateRole(c.Request.Context(), userID, models.UserRole(req.Role))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, user)
}
