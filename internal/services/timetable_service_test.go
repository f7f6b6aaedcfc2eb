package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/school-hub/school-service/internal/cache"
	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
	"github.com/school-hub/school-service/internal/validator"
)

// stubRepository is the shared nil-base repository aggregate for service
// tests. Each test plugs in only the sub-repository it exercises.
type stubRepository struct {
	student      repositories.StudentRepository
	event        repositories.EventRepository
	sport        repositories.SportRepository
	achievement  repositories.AchievementRepository
	announcement repositories.AnnouncementRepository
	notification repositories.NotificationRepository
	timetable    repositories.TimetableRepository
	user         repositories.UserRepository
}

func (r *stubRepository) Student() repositories.StudentRepository           { return r.student }
func (r *stubRepository) Event() repositories.EventRepository               { return r.event }
func (r *stubRepository) Sport() repositories.SportRepository               { return r.sport }
func (r *stubRepository) Achievement() repositories.AchievementRepository   { return r.achievement }
func (r *stubRepository) Announcement() repositories.AnnouncementRepository { return r.announcement }
func (r *stubRepository) Notification() repositories.NotificationRepository { return r.notification }
func (r *stubRepository) Timetable() repositories.TimetableRepository       { return r.timetable }
func (r *stubRepository) User() repositories.UserRepository                 { return r.user }
func (r *stubRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(r)
}
func (r *stubRepository) Ping(ctx context.Context) error { return nil }
func (r *stubRepository) Close() error                   { return nil }

// mockTimetableRepository keeps grades and slots in maps, keyed the way
// the postgres implementation queries them.
type mockTimetableRepository struct {
	grades map[string]*models.Grade
	slots  map[string]*models.TimetableSlot
	nextID uint
}

func newMockTimetableRepository() *mockTimetableRepository {
	return &mockTimetableRepository{
		grades: make(map[string]*models.Grade),
		slots:  make(map[string]*models.TimetableSlot),
	}
}

func slotKey(gradeLevel string, section models.SlotSection, period string) string {
	return fmt.Sprintf("%s|%s|%s", gradeLevel, section, period)
}

func (m *mockTimetableRepository) CreateGrade(ctx context.Context, grade *models.Grade) error {
	if _, exists := m.grades[grade.Level]; exists {
		return repositories.ErrDuplicate
	}
	m.nextID++
	grade.ID = m.nextID
	m.grades[grade.Level] = grade
	return nil
}

func (m *mockTimetableRepository) ListGrades(ctx context.Context) ([]*models.Grade, error) {
	grades := make([]*models.Grade, 0, len(m.grades))
	for _, grade := range m.grades {
		grades = append(grades, grade)
	}
	return grades, nil
}

func (m *mockTimetableRepository) GetGradeByLevel(ctx context.Context, level string) (*models.Grade, error) {
	grade, ok := m.grades[level]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return grade, nil
}

func (m *mockTimetableRepository) GetSlot(ctx context.Context, gradeLevel string, section models.SlotSection, period string) (*models.TimetableSlot, error) {
	slot, ok := m.slots[slotKey(gradeLevel, section, period)]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return slot, nil
}

func (m *mockTimetableRepository) SaveSlot(ctx context.Context, slot *models.TimetableSlot) error {
	for level, grade := range m.grades {
		if grade.ID == slot.GradeID {
			m.slots[slotKey(level, slot.Section, slot.Period)] = slot
			return nil
		}
	}
	return repositories.ErrNotFound
}

func newTimetableServiceForTest(repo *mockTimetableRepository) *timetableService {
	return &timetableService{
		repo:      &stubRepository{timetable: repo},
		cache:     cache.NewCacheManager(nil),
		logger:    slog.New(slog.NewTextHandler(os.Stdout, nil)),
		validator: validator.New(),
	}
}

func TestTimetableService_UpdateSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the period row on first write", func(t *testing.T) {
		repo := newMockTimetableRepository()
		repo.grades["10"] = &models.Grade{ID: 1, Level: "10"}
		service := newTimetableServiceForTest(repo)

		slot, err := service.UpdateSlot(ctx, &validator.UpdateSlotRequest{
			Grade:   "10",
			Period:  "2",
			Day:     "monday",
			Subject: "Mathematics",
			Color:   "#ff0000",
		})
		if err != nil {
			t.Fatalf("UpdateSlot failed: %v", err)
		}

		if slot.Section != models.SectionTimetable {
			t.Errorf("Expected section %q, got %q", models.SectionTimetable, slot.Section)
		}
		entry, ok := slot.DayEntries()["monday"]
		if !ok {
			t.Fatal("Expected monday entry to exist")
		}
		if entry.Subject != "Mathematics" || entry.Color != "#ff0000" {
			t.Errorf("Unexpected entry: %+v", entry)
		}
	})

	t.Run("leaves other weekdays untouched", func(t *testing.T) {
		repo := newMockTimetableRepository()
		repo.grades["10"] = &models.Grade{ID: 1, Level: "10"}
		existing := &models.TimetableSlot{GradeID: 1, Section: models.SectionTimetable, Period: "2"}
		existing.SetDay("tuesday", models.SlotEntry{Subject: "History", Color: "#00ff00"})
		repo.slots[slotKey("10", models.SectionTimetable, "2")] = existing
		service := newTimetableServiceForTest(repo)

		slot, err := service.UpdateSlot(ctx, &validator.UpdateSlotRequest{
			Grade:   "10",
			Period:  "2",
			Day:     "monday",
			Subject: "Mathematics",
		})
		if err != nil {
			t.Fatalf("UpdateSlot failed: %v", err)
		}

		days := slot.DayEntries()
		if days["tuesday"].Subject != "History" {
			t.Errorf("Expected tuesday to keep History, got %q", days["tuesday"].Subject)
		}
		if days["monday"].Subject != "Mathematics" {
			t.Errorf("Expected monday to be Mathematics, got %q", days["monday"].Subject)
		}
	})

	t.Run("period above four lands in the interval section", func(t *testing.T) {
		repo := newMockTimetableRepository()
		repo.grades["7"] = &models.Grade{ID: 1, Level: "7"}
		service := newTimetableServiceForTest(repo)

		slot, err := service.UpdateSlot(ctx, &validator.UpdateSlotRequest{
			Grade:   "7",
			Period:  "5",
			Day:     "friday",
			Subject: "Art",
		})
		if err != nil {
			t.Fatalf("UpdateSlot failed: %v", err)
		}

		if slot.Section != models.SectionInterval {
			t.Errorf("Expected section %q, got %q", models.SectionInterval, slot.Section)
		}
	})

	t.Run("unknown grade", func(t *testing.T) {
		repo := newMockTimetableRepository()
		service := newTimetableServiceForTest(repo)

		_, err := service.UpdateSlot(ctx, &validator.UpdateSlotRequest{
			Grade:   "12",
			Period:  "1",
			Day:     "monday",
			Subject: "Physics",
		})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("invalid day fails validation", func(t *testing.T) {
		repo := newMockTimetableRepository()
		repo.grades["10"] = &models.Grade{ID: 1, Level: "10"}
		service := newTimetableServiceForTest(repo)

		_, err := service.UpdateSlot(ctx, &validator.UpdateSlotRequest{
			Grade:   "10",
			Period:  "1",
			Day:     "sunday",
			Subject: "Physics",
		})
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("Expected ErrValidationFailed, got %v", err)
		}
	})
}

func TestTimetableService_ClearSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an existing day", func(t *testing.T) {
		repo := newMockTimetableRepository()
		repo.grades["10"] = &models.Grade{ID: 1, Level: "10"}
		slot := &models.TimetableSlot{GradeID: 1, Section: models.SectionTimetable, Period: "3"}
		slot.SetDay("wednesday", models.SlotEntry{Subject: "Chemistry"})
		slot.SetDay("thursday", models.SlotEntry{Subject: "Biology"})
		repo.slots[slotKey("10", models.SectionTimetable, "3")] = slot
		service := newTimetableServiceForTest(repo)

		err := service.ClearSlot(ctx, &validator.ClearSlotRequest{
			Grade:  "10",
			Period: "3",
			Day:    "wednesday",
		})
		if err != nil {
			t.Fatalf("ClearSlot failed: %v", err)
		}

		days := slot.DayEntries()
		if _, ok := days["wednesday"]; ok {
			t.Error("Expected wednesday to be removed")
		}
		if days["thursday"].Subject != "Biology" {
			t.Errorf("Expected thursday to keep Biology, got %q", days["thursday"].Subject)
		}
	})

	t.Run("absent day", func(t *testing.T) {
		repo := newMockTimetableRepository()
		repo.grades["10"] = &models.Grade{ID: 1, Level: "10"}
		slot := &models.TimetableSlot{GradeID: 1, Section: models.SectionTimetable, Period: "3"}
		slot.SetDay("monday", models.SlotEntry{Subject: "Chemistry"})
		repo.slots[slotKey("10", models.SectionTimetable, "3")] = slot
		service := newTimetableServiceForTest(repo)

		err := service.ClearSlot(ctx, &validator.ClearSlotRequest{
			Grade:  "10",
			Period: "3",
			Day:    "friday",
		})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("absent period row", func(t *testing.T) {
		repo := newMockTimetableRepository()
		repo.grades["10"] = &models.Grade{ID: 1, Level: "10"}
		service := newTimetableServiceForTest(repo)

		err := service.ClearSlot(ctx, &validator.ClearSlotRequest{
			Grade:  "10",
			Period: "4",
			Day:    "monday",
		})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestTimetableService_GetGradeTimetable(t *testing.T) {
	ctx := context.Background()

	repo := newMockTimetableRepository()
	grade := &models.Grade{ID: 1, Level: "10", HallNo: "H1", Room: "201"}
	first := models.TimetableSlot{GradeID: 1, Section: models.SectionTimetable, Period: "1"}
	first.SetDay("monday", models.SlotEntry{Subject: "Mathematics"})
	fifth := models.TimetableSlot{GradeID: 1, Section: models.SectionInterval, Period: "5"}
	fifth.SetDay("monday", models.SlotEntry{Subject: "Art"})
	grade.Slots = []models.TimetableSlot{first, fifth}
	repo.grades["10"] = grade
	service := newTimetableServiceForTest(repo)

	response, err := service.GetGradeTimetable(ctx, "10")
	if err != nil {
		t.Fatalf("GetGradeTimetable failed: %v", err)
	}

	if response.Grade != "10" || response.Room != "201" {
		t.Errorf("Unexpected grade header: %+v", response)
	}
	if len(response.Timetable) != 1 || response.Timetable[0].Period != "1" {
		t.Errorf("Unexpected timetable rows: %+v", response.Timetable)
	}
	if len(response.Interval) != 1 || response.Interval[0].Period != "5" {
		t.Errorf("Unexpected interval rows: %+v", response.Interval)
	}
}
