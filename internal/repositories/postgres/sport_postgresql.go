package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
)

type sportRepository struct {
	db *gorm.DB
}

func NewSportPostgreSQL(db *gorm.DB) repositories.SportRepository {
	return &sportRepository{db: db}
}

func (r *sportRepository) Create(ctx context.Context, sport *models.Sport) error {
	if err := r.db.WithContext(ctx).Create(sport).Error; err != nil {
		return translateDBError(err, "create sport")
	}
	return nil
}

func (r *sportRepository) GetByID(ctx context.Context, id uint) (*models.Sport, error) {
	var sport models.Sport
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		First(&sport, id).Error; err != nil {
		return nil, translateDBError(err, "get sport by id")
	}
	return &sport, nil
}

func (r *sportRepository) Update(ctx context.Context, sport *models.Sport) error {
	if err := r.db.WithContext(ctx).Save(sport).Error; err != nil {
		return translateDBError(err, "update sport")
	}
	return nil
}

func (r *sportRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Sport{}, id)
	if result.Error != nil {
		return translateDBError(result.Error, "delete sport")
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *sportRepository) List(ctx context.Context, filters repositories.SportFilters) ([]*models.Sport, int64, error) {
	var sports []*models.Sport
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Sport{})

	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	query = applySearch(query, filters.Search, "title", "type", "venue", "participating_team")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateDBError(err, "count sports")
	}

	query = applyPaginationAndSorting(query, filters.Pagination, map[string]string{
		"created_at": "created_at",
		"updated_at": "updated_at",
		"title":      "title",
		"date":       "date",
		"status":     "status",
	})

	if err := query.Preload("Creator").Find(&sports).Error; err != nil {
		return nil, 0, translateDBError(err, "list sports")
	}

	return sports, total, nil
}

func (r *sportRepository) GetStats(ctx context.Context, recentLimit int) (*repositories.ResourceStats, error) {
	stats := &repositories.ResourceStats{}

	if err := r.db.WithContext(ctx).
		Model(&models.Sport{}).
		Count(&stats.Total).Error; err != nil {
		return nil, translateDBError(err, "count sports")
	}

	byCategory, err := countBy(r.db.WithContext(ctx).Model(&models.Sport{}), "category")
	if err != nil {
		return nil, translateDBError(err, "count sports by category")
	}
	stats.ByCategory = byCategory

	byStatus, err := countBy(r.db.WithContext(ctx).Model(&models.Sport{}), "status")
	if err != nil {
		return nil, translateDBError(err, "count sports by status")
	}
	stats.ByStatus = byStatus

	var recent []*models.Sport
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&recent).Error; err != nil {
		return nil, translateDBError(err, "recent sports")
	}
	stats.Recent = recent

	return stats, nil
}
