package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/school-hub/school-service/internal/cache"
	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
	"github.com/school-hub/school-service/internal/validator"
)

// ===== RESPONSE DTOs =====

type GradeInfo struct {
	ID     uint   `json:"id"`
	Grade  string `json:"grade"`
	HallNo string `json:"hall_no"`
	Room   string `json:"room"`
}

// SlotRow is one period row of the rendered timetable.
type SlotRow struct {
	Period string                      `json:"period"`
	Days   map[string]models.SlotEntry `json:"days"`
}

type GradeTimetableResponse struct {
	Grade     string    `json:"grade"`
	HallNo    string    `json:"hall_no"`
	Room      string    `json:"room"`
	Timetable []SlotRow `json:"timetable"`
	Interval  []SlotRow `json:"interval"`
}

// ===== SERVICE INTERFACE =====

type TimetableService interface {
	CreateGrade(ctx context.Context, req *validator.GradeCreateRequest) (*models.Grade, error)
	ListGrades(ctx context.Context) ([]GradeInfo, error)
	GetGradeTimetable(ctx context.Context, level string) (*GradeTimetableResponse, error)

	// UpdateSlot writes one (grade, period, weekday) cell, creating the
	// period row on first write. Other weekdays of the row are untouched.
	UpdateSlot(ctx context.Context, req *validator.UpdateSlotRequest) (*models.TimetableSlot, error)

	// ClearSlot removes one weekday cell from an existing period row.
	ClearSlot(ctx context.Context, req *validator.ClearSlotRequest) error
}

// ===== SERVICE IMPLEMENTATION =====

type timetableService struct {
	repo      repositories.Repository
	cache     *cache.CacheManager
	logger    *slog.Logger
	validator *validator.Validator
}

func NewTimetableService(repo repositories.Repository, cacheManager *cache.CacheManager, logger *slog.Logger, v *validator.Validator) TimetableService {
	return &timetableService{
		repo:      repo,
		cache:     cacheManager,
		logger:    logger,
		validator: v,
	}
}

func (s *timetableService) CreateGrade(ctx context.Context, req *validator.GradeCreateRequest) (*models.Grade, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	grade := &models.Grade{
		Level:  req.Grade,
		HallNo: req.HallNo,
		Room:   req.Room,
	}

	if err := s.repo.Timetable().CreateGrade(ctx, grade); err != nil {
		return nil, wrapRepoError(err, "create grade")
	}

	s.logger.Info("grade created", "grade", grade.Level)
	cache.SafeInvalidatePattern(ctx, s.cache.Timetable, "grades:*")

	return grade, nil
}

func (s *timetableService) ListGrades(ctx context.Context) ([]GradeInfo, error) {
	var infos []GradeInfo
	err := s.cache.Timetable.CacheOrExecute(ctx, "grades:all", &infos, cache.ResourceCacheConfig.TTL, func() (interface{}, error) {
		grades, err := s.repo.Timetable().ListGrades(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]GradeInfo, 0, len(grades))
		for _, grade := range grades {
			out = append(out, GradeInfo{
				ID:     grade.ID,
				Grade:  grade.Level,
				HallNo: grade.HallNo,
				Room:   grade.Room,
			})
		}
		return out, nil
	})
	if err != nil {
		return nil, wrapRepoError(err, "list grades")
	}
	return infos, nil
}

func (s *timetableService) GetGradeTimetable(ctx context.Context, level string) (*GradeTimetableResponse, error) {
	var response GradeTimetableResponse
	err := s.cache.Timetable.CacheOrExecute(ctx, fmt.Sprintf("grade:%s", level), &response, cache.ResourceCacheConfig.TTL, func() (interface{}, error) {
		grade, err := s.repo.Timetable().GetGradeByLevel(ctx, level)
		if err != nil {
			return nil, err
		}

		timetable, interval := grade.SlotsBySection()
		return &GradeTimetableResponse{
			Grade:     grade.Level,
			HallNo:    grade.HallNo,
			Room:      grade.Room,
			Timetable: slotRows(timetable),
			Interval:  slotRows(interval),
		}, nil
	})
	if err != nil {
		return nil, wrapRepoError(err, "get grade timetable")
	}
	return &response, nil
}

func slotRows(slots []models.TimetableSlot) []SlotRow {
	rows := make([]SlotRow, 0, len(slots))
	for i := range slots {
		rows = append(rows, SlotRow{
			Period: slots[i].Period,
			Days:   slots[i].DayEntries(),
		})
	}
	return rows
}

func (s *timetableService) UpdateSlot(ctx context.Context, req *validator.UpdateSlotRequest) (*models.TimetableSlot, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	period, err := strconv.Atoi(req.Period)
	if err != nil {
		return nil, fmt.Errorf("%w: period must be numeric", ErrValidationFailed)
	}
	section := models.SectionForPeriod(period)
	day := strings.ToLower(req.Day)

	grade, err := s.repo.Timetable().GetGradeByLevel(ctx, req.Grade)
	if err != nil {
		return nil, wrapRepoError(err, "get grade")
	}

	slot, err := s.repo.Timetable().GetSlot(ctx, req.Grade, section, req.Period)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		slot = &models.TimetableSlot{
			GradeID: grade.ID,
			Section: section,
			Period:  req.Period,
		}
	case err != nil:
		return nil, wrapRepoError(err, "get timetable slot")
	}

	slot.SetDay(day, models.SlotEntry{
		Subject: req.Subject,
		Color:   req.Color,
	})

	if err := s.repo.Timetable().SaveSlot(ctx, slot); err != nil {
		return nil, wrapRepoError(err, "save timetable slot")
	}

	s.logger.Info("timetable slot updated",
		"grade", req.Grade,
		"period", req.Period,
		"day", day,
		"subject", req.Subject)
	if err := s.cache.InvalidateTimetable(ctx, req.Grade); err != nil {
		s.logger.Error("failed to invalidate timetable cache", "error", err, "grade", req.Grade)
	}

	return slot, nil
}

func (s *timetableService) ClearSlot(ctx context.Context, req *validator.ClearSlotRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	period, err := strconv.Atoi(req.Period)
	if err != nil {
		return fmt.Errorf("%w: period must be numeric", ErrValidationFailed)
	}
	section := models.SectionForPeriod(period)
	day := strings.ToLower(req.Day)

	slot, err := s.repo.Timetable().GetSlot(ctx, req.Grade, section, req.Period)
	if err != nil {
		return wrapRepoError(err, "get timetable slot")
	}

	if !slot.ClearDay(day) {
		return fmt.Errorf("clear timetable slot: %w", ErrNotFound)
	}

	if err := s.repo.Timetable().SaveSlot(ctx, slot); err != nil {
		return wrapRepoError(err, "save timetable slot")
	}

	s.logger.Info("timetable slot cleared",
		"grade", req.Grade,
		"period", req.Period,
		"day", day)
	if err := s.cache.InvalidateTimetable(ctx, req.Grade); err != nil {
		s.logger.Error("failed to invalidate timetable cache", "error", err, "grade", req.Grade)
	}

	return nil
}
