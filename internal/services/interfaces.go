package services

import (
	"context"

	"github.com/school-hub/school-service/internal/repositories"
)

// ===== SHARED LIST TYPES =====

// ListQuery carries the pagination, sorting and search parameters every
// listing endpoint accepts.
type ListQuery struct {
	Page      int    `json:"page"`
	Size      int    `json:"size"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	Search    string `json:"search"`
}

const (
	defaultPageSize  = 10
	maxPageSize      = 100
	recentStatsLimit = 5
)

func (q *ListQuery) normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 || q.Size > maxPageSize {
		q.Size = defaultPageSize
	}
}

func (q ListQuery) pagination() repositories.Pagination {
	return repositories.Pagination{
		Limit:     q.Size,
		Offset:    (q.Page - 1) * q.Size,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}
}

func totalPages(total int64, size int) int {
	return int((total + int64(size) - 1) / int64(size))
}

// ListMeta is embedded by every list response.
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
}

func newListMeta(total int64, q ListQuery) ListMeta {
	return ListMeta{
		Total:      total,
		Page:       q.Page,
		Size:       q.Size,
		TotalPages: totalPages(total, q.Size),
	}
}

// ===== SERVICE MANAGER =====

// ServiceManager owns all service instances and their lifecycle.
type ServiceManager interface {
	Student() StudentService
	Event() EventService
	Sport() SportService
	Achievement() AchievementService
	Announcement() AnnouncementService
	Notification() NotificationService
	Timetable() TimetableService
	Auth() AuthService
	Export() ExportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
