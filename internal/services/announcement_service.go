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

type AnnouncementListQuery struct {
	ListQuery
	Type       string `json:"type"`
	ActiveOnly bool   `json:"active_only"`
}

type AnnouncementListResponse struct {
	Announcements []*models.Announcement `json:"announcements"`
	ListMeta
}

// ===== SERVICE INTERFACE =====

type AnnouncementService interface {
	Create(ctx context.Context, req *validator.AnnouncementCreateRequest, createdBy uint) (*models.Announcement, error)
	GetByID(ctx context.Context, id uint) (*models.Announcement, error)
	Update(ctx context.Context, id uint, req *validator.AnnouncementUpdateRequest) (*models.Announcement, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query AnnouncementListQuery) (*AnnouncementListResponse, error)

	// GetActiveForRole is the audience-filtered view regular users see.
	GetActiveForRole(ctx context.Context, role models.UserRole) ([]*models.Announcement, error)

	GetStats(ctx context.Context) (*repositories.ResourceStats, error)
}

// ===== SERVICE IMPLEMENTATION =====

type announcementService struct {
	repo      repositories.Repository
	cache     *cache.CacheManager
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAnnouncementService(repo repositories.Repository, cacheManager *cache.CacheManager, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator) AnnouncementService {
	return &announcementService{
		repo:      repo,
		cache:     cacheManager,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

func (s *announcementService) Create(ctx context.Context, req *validator.AnnouncementCreateRequest, createdBy uint) (*models.Announcement, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	announcementType := models.AnnouncementTypeGeneral
	if req.Type != "" {
		announcementType = models.AnnouncementType(req.Type)
	}

	expiry := time.Now().Add(models.DefaultAnnouncementExpiry)
	if req.ExpiryDate != nil {
		expiry = *req.ExpiryDate
	}

	announcement := &models.Announcement{
		Title:          req.Title,
		Message:        req.Message,
		Type:           announcementType,
		IsActive:       true,
		TargetAudience: datatypes.NewJSONSlice(req.TargetAudience),
		ExpiryDate:     expiry,
		CreatedBy:      createdBy,
	}

	if err := s.repo.Announcement().Create(ctx, announcement); err != nil {
		return nil, wrapRepoError(err, "create announcement")
	}

	s.logger.Info("announcement created", "announcement_id", announcement.ID, "type", announcement.Type)
	cache.InvalidateResourceCache(ctx, s.cache, "announcement", announcement.ID)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.DomainTopic, events.NewEvent(events.EventAnnouncementCreated, announcement)); err != nil {
			s.logger.Error("failed to publish event", "error", err, "event_type", events.EventAnnouncementCreated)
		}
	}

	return announcement, nil
}

func (s *announcementService) GetByID(ctx context.Context, id uint) (*models.Announcement, error) {
	announcement, err := s.repo.Announcement().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get announcement")
	}
	return announcement, nil
}

func (s *announcementService) Update(ctx context.Context, id uint, req *validator.AnnouncementUpdateRequest) (*models.Announcement, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	announcement, err := s.repo.Announcement().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get announcement")
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Message != nil {
		announcement.Message = *req.Message
	}
	if req.Type != nil {
		announcement.Type = models.AnnouncementType(*req.Type)
	}
	if req.IsActive != nil {
		announcement.IsActive = *req.IsActive
	}
	if req.TargetAudience != nil {
		announcement.TargetAudience = datatypes.NewJSONSlice(req.TargetAudience)
	}
	if req.ExpiryDate != nil {
		announcement.ExpiryDate = *req.ExpiryDate
	}

	if err := s.repo.Announcement().Update(ctx, announcement); err != nil {
		return nil, wrapRepoError(err, "update announcement")
	}

	s.logger.Info("announcement updated", "announcement_id", announcement.ID)
	cache.InvalidateResourceCache(ctx, s.cache, "announcement", announcement.ID)

	return announcement, nil
}

func (s *announcementService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Announcement().Delete(ctx, id); err != nil {
		return wrapRepoError(err, "delete announcement")
	}

	s.logger.Info("announcement deleted", "announcement_id", id)
	cache.InvalidateResourceCache(ctx, s.cache, "announcement", id)

	return nil
}

func (s *announcementService) List(ctx context.Context, query AnnouncementListQuery) (*AnnouncementListResponse, error) {
	query.normalize()

	filters := repositories.AnnouncementFilters{
		Search:     query.Search,
		ActiveOnly: query.ActiveOnly,
		Pagination: query.pagination(),
	}
	if query.Type != "" {
		announcementType := models.AnnouncementType(query.Type)
		filters.Type = &announcementType
	}

	announcements, total, err := s.repo.Announcement().List(ctx, filters)
	if err != nil {
		return nil, wrapRepoError(err, "list announcements")
	}

	return &AnnouncementListResponse{
		Announcements: announcements,
		ListMeta:      newListMeta(total, query.ListQuery),
	}, nil
}

func (s *announcementService) GetActiveForRole(ctx context.Context, role models.UserRole) ([]*models.Announcement, error) {
	announcements, err := s.repo.Announcement().GetActiveForRole(ctx, role)
	if err != nil {
		return nil, wrapRepoError(err, "active announcements")
	}
	return announcements, nil
}

func (s *announcementService) GetStats(ctx context.Context) (*repositories.ResourceStats, error) {
	var stats repositories.ResourceStats
	err := s.cache.Stats.CacheOrExecute(ctx, "announcement:overview", &stats, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Announcement().GetStats(ctx, recentStatsLimit)
	})
	if err != nil {
		return nil, wrapRepoError(err, "announcement stats")
	}
	return &stats, nil
}
