package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
	"github.com/school-hub/school-service/internal/validator"
)

type mockUserRepository struct {
	byEmail map[string]*models.User
	nextID  uint
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{byEmail: make(map[string]*models.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if _, exists := m.byEmail[user.Email]; exists {
		return repositories.ErrDuplicate
	}
	m.nextID++
	user.ID = m.nextID
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	for _, user := range m.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	users := make([]*models.User, 0, len(m.byEmail))
	for _, user := range m.byEmail {
		if filters.Role != nil && user.Role != *filters.Role {
			continue
		}
		users = append(users, user)
	}
	return users, int64(len(users)), nil
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, id uint, role models.UserRole) error {
	for _, user := range m.byEmail {
		if user.ID == id {
			user.Role = role
			return nil
		}
	}
	return repositories.ErrNotFound
}

func newAuthServiceForTest(repo *mockUserRepository) AuthService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewAuthService(&stubRepository{user: repo}, logger, validator.New(), "test-secret", time.Hour)
}

func signupRequest() *validator.SignupRequest {
	return &validator.SignupRequest{
		FirstName: "Amal",
		LastName:  "Perera",
		Email:     "amal@example.com",
		Password:  "correct-horse",
	}
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and assigns the user role", func(t *testing.T) {
		repo := newMockUserRepository()
		service := newAuthServiceForTest(repo)

		response, err := service.Signup(ctx, signupRequest())
		if err != nil {
			t.Fatalf("Signup failed: %v", err)
		}

		if response.Token == "" {
			t.Error("Expected a signed token")
		}
		if response.User.Role != models.RoleUser {
			t.Errorf("Expected role %q, got %q", models.RoleUser, response.User.Role)
		}
		if response.User.Password == "correct-horse" {
			t.Error("Password must not be stored in plain text")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(response.User.Password), []byte("correct-horse")); err != nil {
			t.Errorf("Stored password is not a valid hash: %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newMockUserRepository()
		service := newAuthServiceForTest(repo)

		if _, err := service.Signup(ctx, signupRequest()); err != nil {
			t.Fatalf("First signup failed: %v", err)
		}

		_, err := service.Signup(ctx, signupRequest())
		if !errors.Is(err, ErrDuplicate) {
			t.Errorf("Expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("short password fails validation", func(t *testing.T) {
		repo := newMockUserRepository()
		service := newAuthServiceForTest(repo)

		req := signupRequest()
		req.Password = "short"
		_, err := service.Signup(ctx, req)
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("Expected ErrValidationFailed, got %v", err)
		}
	})
}

func TestAuthService_Signin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (AuthService, *mockUserRepository) {
		repo := newMockUserRepository()
		service := newAuthServiceForTest(repo)
		if _, err := service.Signup(ctx, signupRequest()); err != nil {
			t.Fatalf("Signup failed: %v", err)
		}
		return service, repo
	}

	t.Run("valid credentials", func(t *testing.T) {
		service, _ := setup(t)

		response, err := service.Signin(ctx, &validator.SigninRequest{
			Email:    "amal@example.com",
			Password: "correct-horse",
		})
		if err != nil {
			t.Fatalf("Signin failed: %v", err)
		}
		if response.Token == "" {
			t.Error("Expected a signed token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		service, _ := setup(t)

		_, err := service.Signin(ctx, &validator.SigninRequest{
			Email:    "amal@example.com",
			Password: "wrong-password",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email maps to the same error", func(t *testing.T) {
		service, _ := setup(t)

		_, err := service.Signin(ctx, &validator.SigninRequest{
			Email:    "nobody@example.com",
			Password: "correct-horse",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		repo := newMockUserRepository()
		service := newAuthServiceForTest(repo)

		response, err := service.Signup(ctx, signupRequest())
		if err != nil {
			t.Fatalf("Signup failed: %v", err)
		}

		claims, err := service.ValidateToken(response.Token)
		if err != nil {
			t.Fatalf("ValidateToken failed: %v", err)
		}
		if claims.UserID != response.User.ID {
			t.Errorf("Expected user ID %d, got %d", response.User.ID, claims.UserID)
		}
		if claims.Role != models.RoleUser {
			t.Errorf("Expected role %q, got %q", models.RoleUser, claims.Role)
		}
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		repo := newMockUserRepository()
		service := newAuthServiceForTest(repo)
		if _, err := service.Signup(ctx, signupRequest()); err != nil {
			t.Fatalf("Signup failed: %v", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		other := NewAuthService(&stubRepository{user: repo}, logger, validator.New(), "other-secret", time.Hour)
		response, err := other.Signin(ctx, &validator.SigninRequest{
			Email:    "amal@example.com",
			Password: "correct-horse",
		})
		if err != nil {
			t.Fatalf("Signin failed: %v", err)
		}

		if _, err := service.ValidateToken(response.Token); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("Expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		repo := newMockUserRepository()
		service := newAuthServiceForTest(repo)

		if _, err := service.ValidateToken("not-a-token"); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("Expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestAuthService_UpdateRole(t *testing.T) {
	ctx := context.Background()

	repo := newMockUserRepository()
	service := newAuthServiceForTest(repo)

	response, err := service.Signup(ctx, signupRequest())
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	user, err := service.UpdateRole(ctx, response.User.ID, models.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole failed: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("Expected role %q, got %q", models.RoleAdmin, user.Role)
	}

	if _, err := service.UpdateRole(ctx, 999, models.RoleAdmin); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
