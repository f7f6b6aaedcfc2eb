package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/school-hub/school-service/internal/cache"
	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
	"github.com/school-hub/school-service/internal/validator"
)

// ===== RESPONSE DTOs =====

type SportListQuery struct {
	ListQuery
	Category string `json:"category"`
	Status   string `json:"status"`
}

type SportListResponse struct {
	Sports []*models.Sport `json:"sports"`
	ListMeta
}

// ===== SERVICE INTERFACE =====

type SportService interface {
	Create(ctx context.Context, req *validator.SportCreateRequest, createdBy uint) (*models.Sport, error)
	GetByID(ctx context.Context, id uint) (*models.Sport, error)
	Update(ctx context.Context, id uint, req *validator.SportUpdateRequest) (*models.Sport, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query SportListQuery) (*SportListResponse, error)
	GetStats(ctx context.Context) (*repositories.ResourceStats, error)
}

// ===== SERVICE IMPLEMENTATION =====

type sportService struct {
	repo      repositories.Repository
	cache     *cache.CacheManager
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSportService(repo repositories.Repository, cacheManager *cache.CacheManager, logger *slog.Logger, v *validator.Validator) SportService {
	return &sportService{
		repo:      repo,
		cache:     cacheManager,
		logger:    logger,
		validator: v,
	}
}

func (s *sportService) Create(ctx context.Context, req *validator.SportCreateRequest, createdBy uint) (*models.Sport, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	status := models.SportStatusUpcoming
	if req.Status != "" {
		status = models.SportStatus(req.Status)
	}

	sport := &models.Sport{
		Title:             req.Title,
		Type:              req.Type,
		Category:          models.SportCategory(req.Category),
		Date:              req.Date,
		Time:              req.Time,
		Venue:             req.Venue,
		ParticipatingTeam: req.ParticipatingTeam,
		Status:            status,
		ColorCode:         req.ColorCode,
		CreatedBy:         createdBy,
	}

	if err := s.repo.Sport().Create(ctx, sport); err != nil {
		return nil, wrapRepoError(err, "create sport")
	}

	s.logger.Info("sport created", "sport_id", sport.ID, "category", sport.Category)
	cache.InvalidateResourceCache(ctx, s.cache, "sport", sport.ID)

	return sport, nil
}

func (s *sportService) GetByID(ctx context.Context, id uint) (*models.Sport, error) {
	sport, err := s.repo.Sport().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get sport")
	}
	return sport, nil
}

func (s *sportService) Update(ctx context.Context, id uint, req *validator.SportUpdateRequest) (*models.Sport, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	sport, err := s.repo.Sport().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get sport")
	}

	if req.Title != nil {
		sport.Title = *req.Title
	}
	if req.Type != nil {
		sport.Type = *req.Type
	}
	if req.Category != nil {
		sport.Category = models.SportCategory(*req.Category)
	}
	if req.Date != nil {
		sport.Date = *req.Date
	}
	if req.Time != nil {
		sport.Time = *req.Time
	}
	if req.Venue != nil {
		sport.Venue = *req.Venue
	}
	if req.ParticipatingTeam != nil {
		sport.ParticipatingTeam = *req.ParticipatingTeam
	}
	if req.Status != nil {
		sport.Status = models.SportStatus(*req.Status)
	}
	if req.ColorCode != nil {
		sport.ColorCode = *req.ColorCode
	}

	if err := s.repo.Sport().Update(ctx, sport); err != nil {
		return nil, wrapRepoError(err, "update sport")
	}

	s.logger.Info("sport updated", "sport_id", sport.ID)
	cache.InvalidateResourceCache(ctx, s.cache, "sport", sport.ID)

	return sport, nil
}

func (s *sportService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Sport().Delete(ctx, id); err != nil {
		return wrapRepoError(err, "delete sport")
	}

	s.logger.Info("sport deleted", "sport_id", id)
	cache.InvalidateResourceCache(ctx, s.cache, "sport", id)

	return nil
}

func (s *sportService) List(ctx context.Context, query SportListQuery) (*SportListResponse, error) {
	query.normalize()

	filters := repositories.SportFilters{
		Search:     query.Search,
		Pagination: query.pagination(),
	}
	if query.Category != "" {
		category := models.SportCategory(query.Category)
		filters.Category = &category
	}
	if query.Status != "" {
		status := models.SportStatus(query.Status)
		filters.Status = &status
	}

	sports, total, err := s.repo.Sport().List(ctx, filters)
	if err != nil {
		return nil, wrapRepoError(err, "list sports")
	}

	return &SportListResponse{
		Sports:   sports,
		ListMeta: newListMeta(total, query.ListQuery),
	}, nil
}

func (s *sportService) GetStats(ctx context.Context) (*repositories.ResourceStats, error) {
	var stats repositories.ResourceStats
	err := s.cache.Stats.CacheOrExecute(ctx, "sport:overview", &stats, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Sport().GetStats(ctx, recentStatsLimit)
	})
	if err != nil {
		return nil, wrapRepoError(err, "sport stats")
	}
	return &stats, nil
}
