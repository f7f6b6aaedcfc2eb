package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
)

type timetableRepository struct {
	db *gorm.DB
}

func NewTimetablePostgreSQL(db *gorm.DB) repositories.TimetableRepository {
	return &timetableRepository{db: db}
}

func (r *timetableRepository) CreateGrade(ctx context.Context, grade *models.Grade) error {
	if err := r.db.WithContext(ctx).Create(grade).Error; err != nil {
		return translateDBError(err, "create grade")
	}
	return nil
}

func (r *timetableRepository) ListGrades(ctx context.Context) ([]*models.Grade, error) {
	var grades []*models.Grade
	if err := r.db.WithContext(ctx).
		Preload("Slots").
		Order("id ASC").
		Find(&grades).Error; err != nil {
		return nil, translateDBError(err, "list grades")
	}
	return grades, nil
}

func (r *timetableRepository) GetGradeByLevel(ctx context.Context, level string) (*models.Grade, error) {
	var grade models.Grade
	if err := r.db.WithContext(ctx).
		Preload("Slots").
		Where("level = ?", level).
		First(&grade).Error; err != nil {
		return nil, translateDBError(err, "get grade by level")
	}
	return &grade, nil
}

func (r *timetableRepository) GetSlot(ctx context.Context, gradeLevel string, section models.SlotSection, period string) (*models.TimetableSlot, error) {
	var slot models.TimetableSlot
	if err := r.db.WithContext(ctx).
		Joins("JOIN grades ON grades.id = timetable_slots.grade_id").
		Where("grades.level = ? AND timetable_slots.section = ? AND timetable_slots.period = ?",
			gradeLevel, section, period).
		First(&slot).Error; err != nil {
		return nil, translateDBError(err, "get timetable slot")
	}
	return &slot, nil
}

func (r *timetableRepository) SaveSlot(ctx context.Context, slot *models.TimetableSlot) error {
	if err := r.db.WithContext(ctx).Save(slot).Error; err != nil {
		return translateDBError(err, "save timetable slot")
	}
	return nil
}
