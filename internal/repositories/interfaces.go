package repositories

import (
	"context"
	"errors"

	"github.com/school-hub/school-service/internal/models"
)

// Sentinel errors every repository implementation translates its storage
// errors into. Services map these onto the HTTP error taxonomy.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// ===== SHARED FILTER STRUCTS =====

// Pagination is embedded by every filter struct.
type Pagination struct {
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"` // "asc", "desc"
}

type StudentFilters struct {
	Grade           *string `json:"grade"`
	Gender          *string `json:"gender"`
	Search          string  `json:"search"`
	IncludeInactive bool    `json:"include_inactive"`
	Pagination
}

type EventFilters struct {
	Category *models.EventCategory `json:"category"`
	Status   *models.EventStatus   `json:"status"`
	Search   string                `json:"search"`
	Pagination
}

type SportFilters struct {
	Category *models.SportCategory `json:"category"`
	Status   *models.SportStatus   `json:"status"`
	Search   string                `json:"search"`
	Pagination
}

type AchievementFilters struct {
	Category  *models.AchievementCategory `json:"category"`
	Highlight *bool                       `json:"highlight"`
	Search    string                      `json:"search"`
	Pagination
}

type AnnouncementFilters struct {
	Type       *models.AnnouncementType `json:"type"`
	ActiveOnly bool                     `json:"active_only"`
	Search     string                   `json:"search"`
	Pagination
}

type NotificationFilters struct {
	Priority   *models.NotificationPriority `json:"priority"`
	ActiveOnly bool                         `json:"active_only"`
	Search     string                       `json:"search"`
	Pagination
}

type UserFilters struct {
	Role   *models.UserRole `json:"role"`
	Search string           `json:"search"`
	Pagination
}

// ===== SHARED STATISTICS STRUCTS =====

// ResourceStats is the shape of every stats/overview endpoint: total,
// per-bucket counts and a small recent list.
type ResourceStats struct {
	Total      int64            `json:"total"`
	ByCategory map[string]int64 `json:"by_category,omitempty"`
	ByStatus   map[string]int64 `json:"by_status,omitempty"`
	Recent     interface{}      `json:"recent"`
}

type StudentStats struct {
	Total    int64            `json:"total"`
	Active   int64            `json:"active"`
	Inactive int64            `json:"inactive"`
	ByGrade  map[string]int64 `json:"by_grade"`
	ByGender map[string]int64 `json:"by_gender"`
	Recent   []*models.Student `json:"recent"`
}

// ===== REPOSITORY INTERFACES =====

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	SoftDelete(ctx context.Context, id uint) error
	List(ctx context.Context, filters StudentFilters) ([]*models.Student, int64, error)
	GetStats(ctx context.Context, recentLimit int) (*StudentStats, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters EventFilters) ([]*models.Event, int64, error)
	GetStats(ctx context.Context, recentLimit int) (*ResourceStats, error)
}

type SportRepository interface {
	Create(ctx context.Context, sport *models.Sport) error
	GetByID(ctx context.Context, id uint) (*models.Sport, error)
	Update(ctx context.Context, sport *models.Sport) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters SportFilters) ([]*models.Sport, int64, error)
	GetStats(ctx context.Context, recentLimit int) (*ResourceStats, error)
}

type AchievementRepository interface {
	Create(ctx context.Context, achievement *models.Achievement) error
	GetByID(ctx context.Context, id uint) (*models.Achievement, error)
	Update(ctx context.Context, achievement *models.Achievement) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters AchievementFilters) ([]*models.Achievement, int64, error)
	GetStats(ctx context.Context, recentLimit int) (*ResourceStats, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetByID(ctx context.Context, id uint) (*models.Announcement, error)
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters AnnouncementFilters) ([]*models.Announcement, int64, error)
	GetActiveForRole(ctx context.Context, role models.UserRole) ([]*models.Announcement, error)
	GetStats(ctx context.Context, recentLimit int) (*ResourceStats, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	Update(ctx context.Context, notification *models.Notification) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters NotificationFilters) ([]*models.Notification, int64, error)

	// GetActiveForUser returns active, unexpired notifications targeted at
	// the user's role that the user has not read yet.
	GetActiveForUser(ctx context.Context, userID uint, role models.UserRole) ([]*models.Notification, error)

	// MarkRead is idempotent: marking an already-read notification again
	// is a no-op, not an error.
	MarkRead(ctx context.Context, notificationID, userID uint) error

	GetStats(ctx context.Context, recentLimit int) (*ResourceStats, error)
}

type TimetableRepository interface {
	CreateGrade(ctx context.Context, grade *models.Grade) error
	ListGrades(ctx context.Context) ([]*models.Grade, error)
	GetGradeByLevel(ctx context.Context, level string) (*models.Grade, error)
	GetSlot(ctx context.Context, gradeLevel string, section models.SlotSection, period string) (*models.TimetableSlot, error)
	SaveSlot(ctx context.Context, slot *models.TimetableSlot) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filters UserFilters) ([]*models.User, int64, error)
	UpdateRole(ctx context.Context, id uint, role models.UserRole) error
}

// ===== REPOSITORY AGGREGATE =====

type Repository interface {
	Student() StudentRepository
	Event() EventRepository
	Sport() SportRepository
	Achievement() AchievementRepository
	Announcement() AnnouncementRepository
	Notification() NotificationRepository
	Timetable() TimetableRepository
	User() UserRepository

	WithTransaction(ctx context.Context, fn func(Repository) error) error
	Ping(ctx context.Context) error
	Close() error
}

type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
