package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/school-hub/school-service/internal/cache"
	"github.com/school-hub/school-service/internal/events"
	"github.com/school-hub/school-service/internal/repositories"
	"github.com/school-hub/school-service/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	JWTSecret      string
	JWTExpiry      time.Duration
	DefaultTimeout time.Duration
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	// Dependencies
	repo      repositories.Repository
	cache     *cache.CacheManager
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
	config    ServiceManagerConfig

	// Service instances
	studentService      StudentService
	eventService        EventService
	sportService        SportService
	achievementService  AchievementService
	announcementService AnnouncementService
	notificationService NotificationService
	timetableService    TimetableService
	authService         AuthService
	exportService       ExportService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(repo repositories.Repository, cacheManager *cache.CacheManager, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator, config ServiceManagerConfig) ServiceManager {
	if config.DefaultTimeout <= 0 {
		config.DefaultTimeout = 30 * time.Second
	}
	return &serviceManager{
		repo:      repo,
		cache:     cacheManager,
		publisher: publisher,
		logger:    logger,
		validator: v,
		config:    config,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.studentService = NewStudentService(sm.repo, sm.cache, sm.logger, sm.validator)
	sm.eventService = NewEventService(sm.repo, sm.cache, sm.publisher, sm.logger, sm.validator)
	sm.sportService = NewSportService(sm.repo, sm.cache, sm.logger, sm.validator)
	sm.achievementService = NewAchievementService(sm.repo, sm.cache, sm.publisher, sm.logger, sm.validator)
	sm.announcementService = NewAnnouncementService(sm.repo, sm.cache, sm.publisher, sm.logger, sm.validator)
	sm.notificationService = NewNotificationService(sm.repo, sm.cache, sm.publisher, sm.logger, sm.validator)
	sm.timetableService = NewTimetableService(sm.repo, sm.cache, sm.logger, sm.validator)
	sm.authService = NewAuthService(sm.repo, sm.logger, sm.validator, sm.config.JWTSecret, sm.config.JWTExpiry)
	sm.exportService = NewExportService(sm.repo, sm.logger)

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

func (sm *serviceManager) get(name string, service interface{}) {
	if !sm.initialized {
		panic(fmt.Sprintf("%s service requested before initialization", name))
	}
	if service == nil {
		panic(fmt.Sprintf("%s service not initialized", name))
	}
}

// Service getters
func (sm *serviceManager) Student() StudentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.get("student", sm.studentService)
	return sm.studentService
}

func (sm *serviceManager) Event() EventService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.get("event", sm.eventService)
	return sm.eventService
}

func (sm *serviceManager) Sport() SportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.get("sport", sm.sportService)
	return sm.sportService
}

func (sm *serviceManager) Achievement() AchievementService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.get("achievement", sm.achievementService)
	return sm.achievementService
}

func (sm *serviceManager) Announcement() AnnouncementService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.get("announcement", sm.announcementService)
	return sm.announcementService
}

func (sm *serviceManager) Notification() NotificationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.get("notification", sm.notificationService)
	return sm.notificationService
}

func (sm *serviceManager) Timetable() TimetableService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.get("timetable", sm.timetableService)
	return sm.timetableService
}

func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.get("auth", sm.authService)
	return sm.authService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.get("export", sm.exportService)
	return sm.exportService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if sm.publisher != nil {
		if err := sm.publisher.Close(); err != nil {
			sm.logger.Error("Failed to close event publisher", "error", err)
		}
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")

	return nil
}

// WithTimeout creates a context with the default timeout
func (sm *serviceManager) WithTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, sm.config.DefaultTimeout)
}
