package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
)

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementPostgreSQL(db *gorm.DB) repositories.AnnouncementRepository {
	return &announcementRepository{db: db}
}

// audienceClause matches rows whose target_audience is empty, contains
// "all", or contains the given role tag.
func audienceClause(query *gorm.DB, role models.UserRole) *gorm.DB {
	return query.Where(
		`target_audience IS NULL OR jsonb_array_length(target_audience) = 0 OR target_audience @> '["all"]' OR target_audience @> ?`,
		fmt.Sprintf(`[%q]`, string(role)),
	)
}

func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	if err := r.db.WithContext(ctx).Create(announcement).Error; err != nil {
		return translateDBError(err, "create announcement")
	}
	return nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id uint) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		First(&announcement, id).Error; err != nil {
		return nil, translateDBError(err, "get announcement by id")
	}
	return &announcement, nil
}

func (r *announcementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	if err := r.db.WithContext(ctx).Save(announcement).Error; err != nil {
		return translateDBError(err, "update announcement")
	}
	return nil
}

func (r *announcementRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Announcement{}, id)
	if result.Error != nil {
		return translateDBError(result.Error, "delete announcement")
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *announcementRepository) List(ctx context.Context, filters repositories.AnnouncementFilters) ([]*models.Announcement, int64, error) {
	var announcements []*models.Announcement
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Announcement{})

	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.ActiveOnly {
		query = query.Where("is_active AND expiry_date > ?", time.Now())
	}
	query = applySearch(query, filters.Search, "title", "content")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateDBError(err, "count announcements")
	}

	query = applyPaginationAndSorting(query, filters.Pagination, map[string]string{
		"created_at":  "created_at",
		"updated_at":  "updated_at",
		"title":       "title",
		"expiry_date": "expiry_date",
	})

	if err := query.Preload("Creator").Find(&announcements).Error; err != nil {
		return nil, 0, translateDBError(err, "list announcements")
	}

	return announcements, total, nil
}

func (r *announcementRepository) GetActiveForRole(ctx context.Context, role models.UserRole) ([]*models.Announcement, error) {
	var announcements []*models.Announcement

	query := r.db.WithContext(ctx).
		Model(&models.Announcement{}).
		Where("is_active AND expiry_date > ?", time.Now())
	query = audienceClause(query, role)

	if err := query.
		Order("created_at DESC").
		Preload("Creator").
		Find(&announcements).Error; err != nil {
		return nil, translateDBError(err, "active announcements for role")
	}

	return announcements, nil
}

func (r *announcementRepository) GetStats(ctx context.Context, recentLimit int) (*repositories.ResourceStats, error) {
	stats := &repositories.ResourceStats{}

	if err := r.db.WithContext(ctx).
		Model(&models.Announcement{}).
		Count(&stats.Total).Error; err != nil {
		return nil, translateDBError(err, "count announcements")
	}

	byType, err := countBy(r.db.WithContext(ctx).Model(&models.Announcement{}), "type")
	if err != nil {
		return nil, translateDBError(err, "count announcements by type")
	}
	stats.ByCategory = byType

	var recent []*models.Announcement
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&recent).Error; err != nil {
		return nil, translateDBError(err, "recent announcements")
	}
	stats.Recent = recent

	return stats, nil
}
