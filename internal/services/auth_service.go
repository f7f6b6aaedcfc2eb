package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
	"github.com/school-hub/school-service/internal/validator"
)

// ===== RESPONSE DTOs =====

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type UserListQuery struct {
	ListQuery
	Role string `json:"role"`
}

type UserListResponse struct {
	Users []*models.User `json:"users"`
	ListMeta
}

// Claims is the JWT payload carried by every authenticated request.
type Claims struct {
	UserID uint            `json:"user_id"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// ===== SERVICE INTERFACE =====

type AuthService interface {
	Signup(ctx context.Context, req *validator.SignupRequest) (*AuthResponse, error)
	Signin(ctx context.Context, req *validator.SigninRequest) (*AuthResponse, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	ListUsers(ctx context.Context, query UserListQuery) (*UserListResponse, error)
	UpdateRole(ctx context.Context, userID uint, role models.UserRole) (*models.User, error)

	// ValidateToken parses and verifies a bearer token.
	ValidateToken(tokenString string) (*Claims, error)
}

// ===== SERVICE IMPLEMENTATION =====

type authService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	jwtSecret []byte
	jwtExpiry time.Duration
}

func NewAuthService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, jwtSecret string, jwtExpiry time.Duration) AuthService {
	return &authService{
		repo:      repo,
		logger:    logger,
		validator: v,
		jwtSecret: []byte(jwtSecret),
		jwtExpiry: jwtExpiry,
	}
}

func (s *authService) Signup(ctx context.Context, req *validator.SignupRequest) (*AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     string(hash),
		Role:         models.RoleUser,
		AgreeToTerms: req.AgreeToTerms,
	}

	// The unique index on email turns a concurrent signup race into a
	// plain duplicate error.
	if err := s.repo.User().Create(ctx, user); err != nil {
		return nil, wrapRepoError(err, "create user")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", "user_id", user.ID)
	return &AuthResponse{Token: token, User: user}, nil
}

func (s *authService) Signin(ctx context.Context, req *validator.SigninRequest) (*AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the
		// caller.
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, wrapRepoError(err, "get user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user signed in", "user_id", user.ID)
	return &AuthResponse{Token: token, User: user}, nil
}

func (s *authService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get user")
	}
	return user, nil
}

func (s *authService) ListUsers(ctx context.Context, query UserListQuery) (*UserListResponse, error) {
	query.normalize()

	filters := repositories.UserFilters{
		Search:     query.Search,
		Pagination: query.pagination(),
	}
	if query.Role != "" {
		role := models.UserRole(query.Role)
		filters.Role = &role
	}

	users, total, err := s.repo.User().List(ctx, filters)
	if err != nil {
		return nil, wrapRepoError(err, "list users")
	}

	return &UserListResponse{
		Users:    users,
		ListMeta: newListMeta(total, query.ListQuery),
	}, nil
}

func (s *authService) UpdateRole(ctx context.Context, userID uint, role models.UserRole) (*models.User, error) {
	if err := s.repo.User().UpdateRole(ctx, userID, role); err != nil {
		return nil, wrapRepoError(err, "update user role")
	}

	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		return nil, wrapRepoError(err, "get user")
	}

	s.logger.Info("user role updated", "user_id", userID, "role", role)
	return user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token failed: %w", err)
	}
	return signed, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	return claims, nil
}
