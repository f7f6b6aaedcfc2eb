package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/school-hub/school-service/internal/cache"
	"github.com/school-hub/school-service/internal/events"
	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
	"github.com/school-hub/school-service/internal/validator"
)

// ===== RESPONSE DTOs =====

type EventListQuery struct {
	ListQuery
	Category string `json:"category"`
	Status   string `json:"status"`
}

type EventListResponse struct {
	Events []*models.Event `json:"events"`
	ListMeta
}

// ===== SERVICE INTERFACE =====

type EventService interface {
	Create(ctx context.Context, req *validator.EventCreateRequest, imagePath string, createdBy uint) (*models.Event, error)
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	Update(ctx context.Context, id uint, req *validator.EventUpdateRequest, imagePath string) (*models.Event, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query EventListQuery) (*EventListResponse, error)
	GetStats(ctx context.Context) (*repositories.ResourceStats, error)
}

// ===== SERVICE IMPLEMENTATION =====

type eventService struct {
	repo      repositories.Repository
	cache     *cache.CacheManager
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewEventService(repo repositories.Repository, cacheManager *cache.CacheManager, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator) EventService {
	return &eventService{
		repo:      repo,
		cache:     cacheManager,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

func (s *eventService) Create(ctx context.Context, req *validator.EventCreateRequest, imagePath string, createdBy uint) (*models.Event, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	status := models.EventStatusUpcoming
	if req.Status != "" {
		status = models.EventStatus(req.Status)
	}

	event := &models.Event{
		Title:       req.Title,
		Student:     req.Student,
		Award:       req.Award,
		Category:    models.EventCategory(req.Category),
		Date:        req.Date,
		Venue:       req.Venue,
		Description: req.Description,
		Image:       imagePath,
		Status:      status,
		Audience:    req.Audience,
		Organizer:   req.Organizer,
		CreatedBy:   createdBy,
	}

	if err := s.repo.Event().Create(ctx, event); err != nil {
		return nil, wrapRepoError(err, "create event")
	}

	s.logger.Info("event created", "event_id", event.ID, "category", event.Category)
	cache.InvalidateResourceCache(ctx, s.cache, "event", event.ID)
	s.publish(ctx, events.EventEventCreated, event)

	event.ComputeDaysLeft(time.Now())
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.repo.Event().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get event")
	}
	event.ComputeDaysLeft(time.Now())
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id uint, req *validator.EventUpdateRequest, imagePath string) (*models.Event, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	event, err := s.repo.Event().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get event")
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Student != nil {
		event.Student = *req.Student
	}
	if req.Award != nil {
		event.Award = *req.Award
	}
	if req.Category != nil {
		event.Category = models.EventCategory(*req.Category)
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Status != nil {
		event.Status = models.EventStatus(*req.Status)
	}
	if req.Audience != nil {
		event.Audience = *req.Audience
	}
	if req.Organizer != nil {
		event.Organizer = *req.Organizer
	}
	if imagePath != "" {
		event.Image = imagePath
	}

	if err := s.repo.Event().Update(ctx, event); err != nil {
		return nil, wrapRepoError(err, "update event")
	}

	s.logger.Info("event updated", "event_id", event.ID)
	cache.InvalidateResourceCache(ctx, s.cache, "event", event.ID)

	event.ComputeDaysLeft(time.Now())
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Event().Delete(ctx, id); err != nil {
		return wrapRepoError(err, "delete event")
	}

	s.logger.Info("event deleted", "event_id", id)
	cache.InvalidateResourceCache(ctx, s.cache, "event", id)

	return nil
}

func (s *eventService) List(ctx context.Context, query EventListQuery) (*EventListResponse, error) {
	query.normalize()

	filters := repositories.EventFilters{
		Search:     query.Search,
		Pagination: query.pagination(),
	}
	if query.Category != "" {
		category := models.EventCategory(query.Category)
		filters.Category = &category
	}
	if query.Status != "" {
		status := models.EventStatus(query.Status)
		filters.Status = &status
	}

	eventList, total, err := s.repo.Event().List(ctx, filters)
	if err != nil {
		return nil, wrapRepoError(err, "list events")
	}

	now := time.Now()
	for _, event := range eventList {
		event.ComputeDaysLeft(now)
	}

	return &EventListResponse{
		Events:   eventList,
		ListMeta: newListMeta(total, query.ListQuery),
	}, nil
}

func (s *eventService) GetStats(ctx context.Context) (*repositories.ResourceStats, error) {
	var stats repositories.ResourceStats
	err := s.cache.Stats.CacheOrExecute(ctx, "event:overview", &stats, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Event().GetStats(ctx, recentStatsLimit)
	})
	if err != nil {
		return nil, wrapRepoError(err, "event stats")
	}
	return &stats, nil
}

func (s *eventService) publish(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.DomainTopic, events.NewEvent(eventType, data)); err != nil {
		s.logger.Error("failed to publish event", "error", err, "event_type", eventType)
	}
}
