package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
)

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationPostgreSQL(db *gorm.DB) repositories.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return translateDBError(err, "create notification")
	}
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("ReadBy").
		First(&notification, id).Error; err != nil {
		return nil, translateDBError(err, "get notification by id")
	}
	return &notification, nil
}

func (r *notificationRepository) Update(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Save(notification).Error; err != nil {
		return translateDBError(err, "update notification")
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notification_id = ?", id).
			Delete(&models.NotificationRead{}).Error; err != nil {
			return translateDBError(err, "delete notification reads")
		}
		result := tx.Delete(&models.Notification{}, id)
		if result.Error != nil {
			return translateDBError(result.Error, "delete notification")
		}
		if result.RowsAffected == 0 {
			return repositories.ErrNotFound
		}
		return nil
	})
}

func (r *notificationRepository) List(ctx context.Context, filters repositories.NotificationFilters) ([]*models.Notification, int64, error) {
	var notifications []*models.Notification
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Notification{})

	if filters.Priority != nil {
		query = query.Where("priority = ?", *filters.Priority)
	}
	if filters.ActiveOnly {
		query = query.Where("is_active AND expiry_date > ?", time.Now())
	}
	query = applySearch(query, filters.Search, "title", "description")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateDBError(err, "count notifications")
	}

	query = applyPaginationAndSorting(query, filters.Pagination, map[string]string{
		"created_at":  "created_at",
		"updated_at":  "updated_at",
		"title":       "title",
		"priority":    "priority",
		"expiry_date": "expiry_date",
	})

	if err := query.Preload("Creator").Preload("ReadBy").Find(&notifications).Error; err != nil {
		return nil, 0, translateDBError(err, "list notifications")
	}

	return notifications, total, nil
}

func (r *notificationRepository) GetActiveForUser(ctx context.Context, userID uint, role models.UserRole) ([]*models.Notification, error) {
	var notifications []*models.Notification

	query := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("is_active AND expiry_date > ?", time.Now()).
		Where(`NOT EXISTS (
			SELECT 1 FROM notification_reads nr
			WHERE nr.notification_id = notifications.id AND nr.user_id = ?
		)`, userID)
	query = audienceClause(query, role)

	if err := query.
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, translateDBError(err, "active notifications for user")
	}

	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, userID uint) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", notificationID).
		Count(&count).Error; err != nil {
		return translateDBError(err, "check notification")
	}
	if count == 0 {
		return repositories.ErrNotFound
	}

	read := models.NotificationRead{
		NotificationID: notificationID,
		UserID:         userID,
		ReadAt:         time.Now(),
	}
	// Conflict on the pair index means the user already read it; that is
	// not an error.
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "notification_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&read).Error; err != nil {
		return translateDBError(err, "mark notification read")
	}

	return nil
}

func (r *notificationRepository) GetStats(ctx context.Context, recentLimit int) (*repositories.ResourceStats, error) {
	stats := &repositories.ResourceStats{}

	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Count(&stats.Total).Error; err != nil {
		return nil, translateDBError(err, "count notifications")
	}

	byPriority, err := countBy(r.db.WithContext(ctx).Model(&models.Notification{}), "priority")
	if err != nil {
		return nil, translateDBError(err, "count notifications by priority")
	}
	stats.ByCategory = byPriority

	var recent []*models.Notification
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&recent).Error; err != nil {
		return nil, translateDBError(err, "recent notifications")
	}
	stats.Recent = recent

	return stats, nil
}
