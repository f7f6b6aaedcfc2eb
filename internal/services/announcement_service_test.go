package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/school-hub/school-service/internal/cache"
	"github.com/school-hub/school-service/internal/events"
	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
	"github.com/school-hub/school-service/internal/validator"
)

type mockAnnouncementRepository struct {
	byID   map[uint]*models.Announcement
	nextID uint
}

func newMockAnnouncementRepository() *mockAnnouncementRepository {
	return &mockAnnouncementRepository{byID: make(map[uint]*models.Announcement)}
}

func (m *mockAnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	m.nextID++
	announcement.ID = m.nextID
	m.byID[announcement.ID] = announcement
	return nil
}

func (m *mockAnnouncementRepository) GetByID(ctx context.Context, id uint) (*models.Announcement, error) {
	announcement, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return announcement, nil
}

func (m *mockAnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	if _, ok := m.byID[announcement.ID]; !ok {
		return repositories.ErrNotFound
	}
	m.byID[announcement.ID] = announcement
	return nil
}

func (m *mockAnnouncementRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := m.byID[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *mockAnnouncementRepository) List(ctx context.Context, filters repositories.AnnouncementFilters) ([]*models.Announcement, int64, error) {
	announcements := make([]*models.Announcement, 0, len(m.byID))
	for _, announcement := range m.byID {
		announcements = append(announcements, announcement)
	}
	return announcements, int64(len(announcements)), nil
}

func (m *mockAnnouncementRepository) GetActiveForRole(ctx context.Context, role models.UserRole) ([]*models.Announcement, error) {
	now := time.Now()
	var active []*models.Announcement
	for _, announcement := range m.byID {
		if announcement.IsCurrentlyActive(now) && announcement.TargetsRole(role) {
			active = append(active, announcement)
		}
	}
	return active, nil
}

func (m *mockAnnouncementRepository) GetStats(ctx context.Context, recentLimit int) (*repositories.ResourceStats, error) {
	return &repositories.ResourceStats{Total: int64(len(m.byID))}, nil
}

func newAnnouncementServiceForTest(repo *mockAnnouncementRepository, publisher events.EventPublisher) *announcementService {
	return &announcementService{
		repo:      &stubRepository{announcement: repo},
		cache:     cache.NewCacheManager(nil),
		publisher: publisher,
		logger:    slog.New(slog.NewTextHandler(os.Stdout, nil)),
		validator: validator.New(),
	}
}

func TestAnnouncementService_Create(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("applies defaults and publishes an event", func(t *testing.T) {
		repo := newMockAnnouncementRepository()
		publisher := events.NewMockEventPublisher(logger)
		service := newAnnouncementServiceForTest(repo, publisher)

		before := time.Now()
		announcement, err := service.Create(ctx, &validator.AnnouncementCreateRequest{
			Title:   "Sports Day",
			Message: "The annual sports meet is on Friday.",
		}, 7)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if announcement.Type != models.AnnouncementTypeGeneral {
			t.Errorf("Expected default type %q, got %q", models.AnnouncementTypeGeneral, announcement.Type)
		}
		if !announcement.IsActive {
			t.Error("Expected new announcement to be active")
		}
		if announcement.CreatedBy != 7 {
			t.Errorf("Expected creator 7, got %d", announcement.CreatedBy)
		}
		minExpiry := before.Add(models.DefaultAnnouncementExpiry)
		if announcement.ExpiryDate.Before(minExpiry) {
			t.Errorf("Expected default expiry at least %v, got %v", minExpiry, announcement.ExpiryDate)
		}

		published := publisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(published))
		}
		event := published[0]
		if event.Type != events.EventAnnouncementCreated {
			t.Errorf("Expected event type %q, got %q", events.EventAnnouncementCreated, event.Type)
		}
		if event.ID == "" {
			t.Error("Event ID should not be empty")
		}
		if event.Source != "school-service" {
			t.Errorf("Expected source 'school-service', got %q", event.Source)
		}
		if event.Version != "1.0" {
			t.Errorf("Expected version '1.0', got %q", event.Version)
		}
		if event.Timestamp.IsZero() {
			t.Error("Event timestamp should not be zero")
		}
	})

	t.Run("invalid audience tag publishes nothing", func(t *testing.T) {
		repo := newMockAnnouncementRepository()
		publisher := events.NewMockEventPublisher(logger)
		service := newAnnouncementServiceForTest(repo, publisher)

		_, err := service.Create(ctx, &validator.AnnouncementCreateRequest{
			Title:          "Sports Day",
			Message:        "The annual sports meet is on Friday.",
			TargetAudience: []string{"teachers"},
		}, 7)
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("Expected ErrValidationFailed, got %v", err)
		}

		if got := len(publisher.GetPublishedEvents()); got != 0 {
			t.Errorf("Expected no events, got %d", got)
		}
	})
}

func TestAnnouncementService_GetActiveForRole(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	repo := newMockAnnouncementRepository()
	publisher := events.NewMockEventPublisher(logger)
	service := newAnnouncementServiceForTest(repo, publisher)

	if _, err := service.Create(ctx, &validator.AnnouncementCreateRequest{
		Title:          "Staff meeting",
		Message:        "Admins only.",
		TargetAudience: []string{"admin"},
	}, 1); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := service.Create(ctx, &validator.AnnouncementCreateRequest{
		Title:   "Holiday notice",
		Message: "School closed on Monday.",
	}, 1); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	forUser, err := service.GetActiveForRole(ctx, models.RoleUser)
	if err != nil {
		t.Fatalf("GetActiveForRole failed: %v", err)
	}
	if len(forUser) != 1 || forUser[0].Title != "Holiday notice" {
		t.Errorf("Expected only the holiday notice for users, got %d announcements", len(forUser))
	}

	forAdmin, err := service.GetActiveForRole(ctx, models.RoleAdmin)
	if err != nil {
		t.Fatalf("GetActiveForRole failed: %v", err)
	}
	if len(forAdmin) != 2 {
		t.Errorf("Expected both announcements for admins, got %d", len(forAdmin))
	}
}

func TestAnnouncementService_Update(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	repo := newMockAnnouncementRepository()
	publisher := events.NewMockEventPublisher(logger)
	service := newAnnouncementServiceForTest(repo, publisher)

	announcement, err := service.Create(ctx, &validator.AnnouncementCreateRequest{
		Title:   "Sports Day",
		Message: "The annual sports meet is on Friday.",
	}, 1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	inactive := false
	updated, err := service.Update(ctx, announcement.ID, &validator.AnnouncementUpdateRequest{
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.IsActive {
		t.Error("Expected announcement to be deactivated")
	}

	if _, err := service.Update(ctx, 999, &validator.AnnouncementUpdateRequest{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
