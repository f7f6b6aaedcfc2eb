package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/repositories"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentPostgreSQL(db *gorm.DB) repositories.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	if err := r.db.WithContext(ctx).Create(student).Error; err != nil {
		return translateDBError(err, "create student")
	}
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		First(&student, id).Error; err != nil {
		return nil, translateDBError(err, "get student by id")
	}
	return &student, nil
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	if err := r.db.WithContext(ctx).Save(student).Error; err != nil {
		return translateDBError(err, "update student")
	}
	return nil
}

// SoftDelete flips is_active off; the row stays in storage but drops out
// of list queries.
func (r *studentRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ? AND is_active", id).
		Update("is_active", false)
	if result.Error != nil {
		return translateDBError(result.Error, "soft delete student")
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *studentRepository) List(ctx context.Context, filters repositories.StudentFilters) ([]*models.Student, int64, error) {
	var students []*models.Student
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Student{})

	if !filters.IncludeInactive {
		query = query.Where("is_active")
	}
	if filters.Grade != nil {
		query = query.Where("grade = ?", *filters.Grade)
	}
	if filters.Gender != nil {
		query = query.Where("gender = ?", *filters.Gender)
	}
	query = applySearch(query, filters.Search, "name", "parent_name", "address")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateDBError(err, "count students")
	}

	query = applyPaginationAndSorting(query, filters.Pagination, map[string]string{
		"created_at": "created_at",
		"updated_at": "updated_at",
		"name":       "name",
		"grade":      "grade",
	})

	if err := query.Preload("Creator").Find(&students).Error; err != nil {
		return nil, 0, translateDBError(err, "list students")
	}

	return students, total, nil
}

func (r *studentRepository) GetStats(ctx context.Context, recentLimit int) (*repositories.StudentStats, error) {
	stats := &repositories.StudentStats{}

	if err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Count(&stats.Total).Error; err != nil {
		return nil, translateDBError(err, "count students")
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("is_active").
		Count(&stats.Active).Error; err != nil {
		return nil, translateDBError(err, "count active students")
	}
	stats.Inactive = stats.Total - stats.Active

	byGrade, err := countBy(r.db.WithContext(ctx).Model(&models.Student{}).Where("is_active"), "grade")
	if err != nil {
		return nil, translateDBError(err, "count students by grade")
	}
	stats.ByGrade = byGrade

	byGender, err := countBy(r.db.WithContext(ctx).Model(&models.Student{}).Where("is_active"), "gender")
	if err != nil {
		return nil, translateDBError(err, "count students by gender")
	}
	stats.ByGender = byGender

	if err := r.db.WithContext(ctx).
		Where("is_active").
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&stats.Recent).Error; err != nil {
		return nil, translateDBError(err, "recent students")
	}

	return stats, nil
}
