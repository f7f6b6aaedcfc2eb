package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/services"
	"github.com/school-hub/school-service/internal/validator"
)

// stubAuthService only implements token validation; the middleware never
// touches the rest of the interface.
type stubAuthService struct {
	claims *services.Claims
	err    error
}

func (s *stubAuthService) Signup(ctx context.Context, req *validator.SignupRequest) (*services.AuthResponse, error) {
	return nil, nil
}
func (s *stubAuthService) Signin(ctx context.Context, req *validator.SigninRequest) (*services.AuthResponse, error) {
	return nil, nil
}
func (s *stubAuthService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return nil, nil
}
func (s *stubAuthService) ListUsers(ctx context.Context, query services.UserListQuery) (*services.UserListResponse, error) {
	return nil, nil
}
func (s *stubAuthService) UpdateRole(ctx context.Context, userID uint, role models.UserRole) (*models.User, error) {
	return nil, nil
}
func (s *stubAuthService) ValidateToken(tokenString string) (*services.Claims, error) {
	return s.claims, s.err
}

func newAuthTestRouter(auth services.AuthService, roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware := NewAuthMiddleware(auth)

	router := gin.New()
	chain := []gin.HandlerFunc{middleware.Authenticate()}
	if len(roles) > 0 {
		chain = append(chain, middleware.RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		userID := c.GetUint("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	router.GET("/protected", chain...)
	return router
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	validClaims := &services.Claims{UserID: 42, Role: models.RoleUser}

	tests := []struct {
		name       string
		header     string
		claims     *services.Claims
		err        error
		wantStatus int
	}{
		{"missing header", "", validClaims, nil, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc123", validClaims, nil, http.StatusUnauthorized},
		{"empty token", "Bearer ", validClaims, nil, http.StatusUnauthorized},
		{"invalid token", "Bearer bad-token", nil, services.ErrUnauthorized, http.StatusUnauthorized},
		{"valid token", "Bearer good-token", validClaims, nil, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&stubAuthService{claims: tt.claims, err: tt.err})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, recorder.Code)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       models.UserRole
		required   models.UserRole
		wantStatus int
	}{
		{"admin passes admin gate", models.RoleAdmin, models.RoleAdmin, http.StatusOK},
		{"user blocked by admin gate", models.RoleUser, models.RoleAdmin, http.StatusForbidden},
		{"user passes user gate", models.RoleUser, models.RoleUser, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &stubAuthService{claims: &services.Claims{UserID: 1, Role: tt.role}}
			router := newAuthTestRouter(auth, tt.required)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer token")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, recorder.Code)
			}
		})
	}
}
