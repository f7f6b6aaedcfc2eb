package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/school-hub/school-service/internal/cache"
	"github.com/school-hub/school-service/internal/events"
	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
	"github.com/school-hub/school-service/internal/validator"
)

// ===== RESPONSE DTOs =====

type AchievementListQuery struct {
	ListQuery
	Category  string `json:"category"`
	Highlight *bool  `json:"highlight"`
}

type AchievementListResponse struct {
	Achievements []*models.Achievement `json:"achievements"`
	ListMeta
}

// ===== SERVICE INTERFACE =====

type AchievementService interface {
	Create(ctx context.Context, req *validator.AchievementCreateRequest, imagePath string, createdBy uint) (*models.Achievement, error)
	GetByID(ctx context.Context, id uint) (*models.Achievement, error)
	Update(ctx context.Context, id uint, req *validator.AchievementUpdateRequest, imagePath string) (*models.Achievement, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query AchievementListQuery) (*AchievementListResponse, error)
	GetStats(ctx context.Context) (*repositories.ResourceStats, error)
}

// ===== SERVICE IMPLEMENTATION =====

type achievementService struct {
	repo      repositories.Repository
	cache     *cache.CacheManager
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAchievementService(repo repositories.Repository, cacheManager *cache.CacheManager, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator) AchievementService {
	return &achievementService{
		repo:      repo,
		cache:     cacheManager,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

func (s *achievementService) Create(ctx context.Context, req *validator.AchievementCreateRequest, imagePath string, createdBy uint) (*models.Achievement, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	achievement := &models.Achievement{
		Title:       req.Title,
		Student:     req.Student,
		Grade:       req.Grade,
		Award:       req.Award,
		Category:    models.AchievementCategory(req.Category),
		Date:        req.Date,
		Venue:       req.Venue,
		Description: req.Description,
		Image:       imagePath,
		Highlight:   req.Highlight,
		CreatedBy:   createdBy,
	}

	if err := s.repo.Achievement().Create(ctx, achievement); err != nil {
		return nil, wrapRepoError(err, "create achievement")
	}

	s.logger.Info("achievement created", "achievement_id", achievement.ID, "student", achievement.Student)
	cache.InvalidateResourceCache(ctx, s.cache, "achievement", achievement.ID)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.DomainTopic, events.NewEvent(events.EventAchievementCreated, achievement)); err != nil {
			s.logger.Error("failed to publish event", "error", err, "event_type", events.EventAchievementCreated)
		}
	}

	return achievement, nil
}

func (s *achievementService) GetByID(ctx context.Context, id uint) (*models.Achievement, error) {
	achievement, err := s.repo.Achievement().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get achievement")
	}
	return achievement, nil
}

func (s *achievementService) Update(ctx context.Context, id uint, req *validator.AchievementUpdateRequest, imagePath string) (*models.Achievement, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	achievement, err := s.repo.Achievement().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get achievement")
	}

	if req.Title != nil {
		achievement.Title = *req.Title
	}
	if req.Student != nil {
		achievement.Student = *req.Student
	}
	if req.Grade != nil {
		achievement.Grade = *req.Grade
	}
	if req.Award != nil {
		achievement.Award = *req.Award
	}
	if req.Category != nil {
		achievement.Category = models.AchievementCategory(*req.Category)
	}
	if req.Date != nil {
		achievement.Date = *req.Date
	}
	if req.Venue != nil {
		achievement.Venue = *req.Venue
	}
	if req.Description != nil {
		achievement.Description = *req.Description
	}
	if req.Highlight != nil {
		achievement.Highlight = *req.Highlight
	}
	if imagePath != "" {
		achievement.Image = imagePath
	}

	if err := s.repo.Achievement().Update(ctx, achievement); err != nil {
		return nil, wrapRepoError(err, "update achievement")
	}

	s.logger.Info("achievement updated", "achievement_id", achievement.ID)
	cache.InvalidateResourceCache(ctx, s.cache, "achievement", achievement.ID)

	return achievement, nil
}

func (s *achievementService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Achievement().Delete(ctx, id); err != nil {
		return wrapRepoError(err, "delete achievement")
	}

	s.logger.Info("achievement deleted", "achievement_id", id)
	cache.InvalidateResourceCache(ctx, s.cache, "achievement", id)

	return nil
}

func (s *achievementService) List(ctx context.Context, query AchievementListQuery) (*AchievementListResponse, error) {
	query.normalize()

	filters := repositories.AchievementFilters{
		Search:     query.Search,
		Highlight:  query.Highlight,
		Pagination: query.pagination(),
	}
	if query.Category != "" {
		category := models.AchievementCategory(query.Category)
		filters.Category = &category
	}

	achievements, total, err := s.repo.Achievement().List(ctx, filters)
	if err != nil {
		return nil, wrapRepoError(err, "list achievements")
	}

	return &AchievementListResponse{
		Achievements: achievements,
		ListMeta:     newListMeta(total, query.ListQuery),
	}, nil
}

func (s *achievementService) GetStats(ctx context.Context) (*repositories.ResourceStats, error) {
	var stats repositories.ResourceStats
	err := s.cache.Stats.CacheOrExecute(ctx, "achievement:overview", &stats, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Achievement().GetStats(ctx, recentStatsLimit)
	})
	if err != nil {
		return nil, wrapRepoError(err, "achievement stats")
	}
	return &stats, nil
}
