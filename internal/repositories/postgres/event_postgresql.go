package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
)

type eventRepository struct {
	db *gorm.DB
}

func NewEventPostgreSQL(db *gorm.DB) repositories.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return translateDBError(err, "create event")
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		First(&event, id).Error; err != nil {
		return nil, translateDBError(err, "get event by id")
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return translateDBError(err, "update event")
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		return translateDBError(result.Error, "delete event")
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *eventRepository) List(ctx context.Context, filters repositories.EventFilters) ([]*models.Event, int64, error) {
	var events []*models.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Event{})

	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	query = applySearch(query, filters.Search, "title", "venue", "organizer", "student")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateDBError(err, "count events")
	}

	query = applyPaginationAndSorting(query, filters.Pagination, map[string]string{
		"created_at": "created_at",
		"updated_at": "updated_at",
		"title":      "title",
		"date":       "date",
		"status":     "status",
	})

	if err := query.Preload("Creator").Find(&events).Error; err != nil {
		return nil, 0, translateDBError(err, "list events")
	}

	return events, total, nil
}

func (r *eventRepository) GetStats(ctx context.Context, recentLimit int) (*repositories.ResourceStats, error) {
	stats := &repositories.ResourceStats{}

	if err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Count(&stats.Total).Error; err != nil {
		return nil, translateDBError(err, "count events")
	}

	byCategory, err := countBy(r.db.WithContext(ctx).Model(&models.Event{}), "category")
	if err != nil {
		return nil, translateDBError(err, "count events by category")
	}
	stats.ByCategory = byCategory

	byStatus, err := countBy(r.db.WithContext(ctx).Model(&models.Event{}), "status")
	if err != nil {
		return nil, translateDBError(err, "count events by status")
	}
	stats.ByStatus = byStatus

	var recent []*models.Event
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&recent).Error; err != nil {
		return nil, translateDBError(err, "recent events")
	}
	stats.Recent = recent

	return stats, nil
}
