package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
)

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementPostgreSQL(db *gorm.DB) repositories.AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	if err := r.db.WithContext(ctx).Create(achievement).Error; err != nil {
		return translateDBError(err, "create achievement")
	}
	return nil
}

func (r *achievementRepository) GetByID(ctx context.Context, id uint) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		First(&achievement, id).Error; err != nil {
		return nil, translateDBError(err, "get achievement by id")
	}
	return &achievement, nil
}

func (r *achievementRepository) Update(ctx context.Context, achievement *models.Achievement) error {
	if err := r.db.WithContext(ctx).Save(achievement).Error; err != nil {
		return translateDBError(err, "update achievement")
	}
	return nil
}

func (r *achievementRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Achievement{}, id)
	if result.Error != nil {
		return translateDBError(result.Error, "delete achievement")
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *achievementRepository) List(ctx context.Context, filters repositories.AchievementFilters) ([]*models.Achievement, int64, error) {
	var achievements []*models.Achievement
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Achievement{})

	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Highlight != nil {
		query = query.Where("highlight = ?", *filters.Highlight)
	}
	query = applySearch(query, filters.Search, "title", "student", "award")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateDBError(err, "count achievements")
	}

	query = applyPaginationAndSorting(query, filters.Pagination, map[string]string{
		"created_at": "created_at",
		"updated_at": "updated_at",
		"title":      "title",
		"date":       "date",
	})

	if err := query.Preload("Creator").Find(&achievements).Error; err != nil {
		return nil, 0, translateDBError(err, "list achievements")
	}

	return achievements, total, nil
}

func (r *achievementRepository) GetStats(ctx context.Context, recentLimit int) (*repositories.ResourceStats, error) {
	stats := &repositories.ResourceStats{}

	if err := r.db.WithContext(ctx).
		Model(&models.Achievement{}).
		Count(&stats.Total).Error; err != nil {
		return nil, translateDBError(err, "count achievements")
	}

	byCategory, err := countBy(r.db.WithContext(ctx).Model(&models.Achievement{}), "category")
	if err != nil {
		return nil, translateDBError(err, "count achievements by category")
	}
	stats.ByCategory = byCategory

	var recent []*models.Achievement
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&recent).Error; err != nil {
		return nil, translateDBError(err, "recent achievements")
	}
	stats.Recent = recent

	return stats, nil
}
