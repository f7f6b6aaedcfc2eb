package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"

	"github.com/school-hub/school-service/internal/cache"
	"github.com/school-hub/school-service/internal/events"
	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
	"github.com/school-hub/school-service/internal/validator"
)

// ===== RESPONSE DTOs =====

type NotificationListQuery struct {
	ListQuery
	Priority   string `json:"priority"`
	ActiveOnly bool   `json:"active_only"`
}

type NotificationListResponse struct {
	Notifications []*models.Notification `json:"notifications"`
	ListMeta
}

// ===== SERVICE INTERFACE =====

type NotificationService interface {
	Create(ctx context.Context, req *validator.NotificationCreateRequest, createdBy uint) (*models.Notification, error)
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	Update(ctx context.Context, id uint, req *validator.NotificationUpdateRequest) (*models.Notification, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query NotificationListQuery) (*NotificationListResponse, error)

	// GetActiveForUser returns unexpired notifications addressed to the
	// user's role that the user has not read.
	GetActiveForUser(ctx context.Context, userID uint, role models.UserRole) ([]*models.Notification, error)

	// MarkRead records the read once; repeated calls are no-ops.
	MarkRead(ctx context.Context, notificationID, userID uint) error

	GetStats(ctx context.Context) (*repositories.ResourceStats, error)
}

// ===== SERVICE IMPLEMENTATION =====

type notificationService struct {
	repo      repositories.Repository
	cache     *cache.CacheManager
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewNotificationService(repo repositories.Repository, cacheManager *cache.CacheManager, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator) NotificationService {
	return &notificationService{
		repo:      repo,
		cache:     cacheManager,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

func (s *notificationService) Create(ctx context.Context, req *validator.NotificationCreateRequest, createdBy uint) (*models.Notification, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	priority := models.PriorityNormal
	if req.Priority != "" {
		priority = models.NotificationPriority(req.Priority)
	}

	expiry := time.Now().Add(models.DefaultNotificationExpiry)
	if req.ExpiryDate != nil {
		expiry = *req.ExpiryDate
	}

	notification := &models.Notification{
		Title:          req.Title,
		Description:    req.Description,
		Priority:       priority,
		IsActive:       true,
		TargetAudience: datatypes.NewJSONSlice(req.TargetAudience),
		ExpiryDate:     expiry,
		CreatedBy:      createdBy,
	}

	if err := s.repo.Notification().Create(ctx, notification); err != nil {
		return nil, wrapRepoError(err, "create notification")
	}

	s.logger.Info("notification created", "notification_id", notification.ID, "priority", notification.Priority)
	cache.InvalidateResourceCache(ctx, s.cache, "notification", notification.ID)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.DomainTopic, events.NewEvent(events.EventNotificationCreated, notification)); err != nil {
			s.logger.Error("failed to publish event", "error", err, "event_type", events.EventNotificationCreated)
		}
	}

	return notification, nil
}

func (s *notificationService) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	notification, err := s.repo.Notification().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get notification")
	}
	return notification, nil
}

func (s *notificationService) Update(ctx context.Context, id uint, req *validator.NotificationUpdateRequest) (*models.Notification, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	notification, err := s.repo.Notification().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get notification")
	}

	if req.Title != nil {
		notification.Title = *req.Title
	}
	if req.Description != nil {
		notification.Description = *req.Description
	}
	if req.Priority != nil {
		notification.Priority = models.NotificationPriority(*req.Priority)
	}
	if req.IsActive != nil {
		notification.IsActive = *req.IsActive
	}
	if req.TargetAudience != nil {
		notification.TargetAudience = datatypes.NewJSONSlice(req.TargetAudience)
	}
	if req.ExpiryDate != nil {
		notification.ExpiryDate = *req.ExpiryDate
	}

	if err := s.repo.Notification().Update(ctx, notification); err != nil {
		return nil, wrapRepoError(err, "update notification")
	}

	s.logger.Info("notification updated", "notification_id", notification.ID)
	cache.InvalidateResourceCache(ctx, s.cache, "notification", notification.ID)

	return notification, nil
}

func (s *notificationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Notification().Delete(ctx, id); err != nil {
		return wrapRepoError(err, "delete notification")
	}

	s.logger.Info("notification deleted", "notification_id", id)
	cache.InvalidateResourceCache(ctx, s.cache, "notification", id)

	return nil
}

func (s *notificationService) List(ctx context.Context, query NotificationListQuery) (*NotificationListResponse, error) {
	query.normalize()

	filters := repositories.NotificationFilters{
		Search:     query.Search,
		ActiveOnly: query.ActiveOnly,
		Pagination: query.pagination(),
	}
	if query.Priority != "" {
		priority := models.NotificationPriority(query.Priority)
		filters.Priority = &priority
	}

	notifications, total, err := s.repo.Notification().List(ctx, filters)
	if err != nil {
		return nil, wrapRepoError(err, "list notifications")
	}

	return &NotificationListResponse{
		Notifications: notifications,
		ListMeta:      newListMeta(total, query.ListQuery),
	}, nil
}

func (s *notificationService) GetActiveForUser(ctx context.Context, userID uint, role models.UserRole) ([]*models.Notification, error) {
	notifications, err := s.repo.Notification().GetActiveForUser(ctx, userID, role)
	if err != nil {
		return nil, wrapRepoError(err, "active notifications")
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID uint) error {
	if err := s.repo.Notification().MarkRead(ctx, notificationID, userID); err != nil {
		return wrapRepoError(err, "mark notification read")
	}

	s.logger.Info("notification marked read", "notification_id", notificationID, "user_id", userID)
	return nil
}

func (s *notificationService) GetStats(ctx context.Context) (*repositories.ResourceStats, error) {
	var stats repositories.ResourceStats
	err := s.cache.Stats.CacheOrExecute(ctx, "notification:overview", &stats, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Notification().GetStats(ctx, recentStatsLimit)
	})
	if err != nil {
		return nil, wrapRepoError(err, "notification stats")
	}
	return &stats, nil
}
