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

type StudentListQuery struct {
	ListQuery
	Grade           string `json:"grade"`
	Gender          string `json:"gender"`
	IncludeInactive bool   `json:"include_inactive"`
}

type StudentListResponse struct {
	Students []*models.Student `json:"students"`
	ListMeta
}

// ===== SERVICE INTERFACE =====

type StudentService interface {
	Create(ctx context.Context, req *validator.StudentCreateRequest, createdBy uint) (*models.Student, error)
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	Update(ctx context.Context, id uint, req *validator.StudentUpdateRequest) (*models.Student, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query StudentListQuery) (*StudentListResponse, error)
	GetStats(ctx context.Context) (*repositories.StudentStats, error)
}

// ===== SERVICE IMPLEMENTATION =====

type studentService struct {
	repo      repositories.Repository
	cache     *cache.CacheManager
	logger    *slog.Logger
	validator *validator.Validator
}

func NewStudentService(repo repositories.Repository, cacheManager *cache.CacheManager, logger *slog.Logger, v *validator.Validator) StudentService {
	return &studentService{
		repo:      repo,
		cache:     cacheManager,
		logger:    logger,
		validator: v,
	}
}

func (s *studentService) Create(ctx context.Context, req *validator.StudentCreateRequest, createdBy uint) (*models.Student, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	student := &models.Student{
		Name:          req.Name,
		Address:       req.Address,
		Grade:         req.Grade,
		Gender:        req.Gender,
		ParentName:    req.ParentName,
		ContactNumber: req.ContactNumber,
		IsActive:      true,
		CreatedBy:     createdBy,
	}

	// The partial unique index on (name, grade) rejects a second active
	// row; a concurrent duplicate surfaces here as ErrDuplicate.
	if err := s.repo.Student().Create(ctx, student); err != nil {
		return nil, wrapRepoError(err, "create student")
	}

	s.logger.Info("student created", "student_id", student.ID, "grade", student.Grade)
	cache.InvalidateResourceCache(ctx, s.cache, "student", student.ID)

	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get student")
	}
	return student, nil
}

func (s *studentService) Update(ctx context.Context, id uint, req *validator.StudentUpdateRequest) (*models.Student, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "get student")
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.Grade != nil {
		student.Grade = *req.Grade
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.ParentName != nil {
		student.ParentName = *req.ParentName
	}
	if req.ContactNumber != nil {
		student.ContactNumber = *req.ContactNumber
	}

	if err := s.repo.Student().Update(ctx, student); err != nil {
		return nil, wrapRepoError(err, "update student")
	}

	s.logger.Info("student updated", "student_id", student.ID)
	cache.InvalidateResourceCache(ctx, s.cache, "student", student.ID)

	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Student().SoftDelete(ctx, id); err != nil {
		return wrapRepoError(err, "delete student")
	}

	s.logger.Info("student deactivated", "student_id", id)
	cache.InvalidateResourceCache(ctx, s.cache, "student", id)

	return nil
}

func (s *studentService) List(ctx context.Context, query StudentListQuery) (*StudentListResponse, error) {
	query.normalize()

	filters := repositories.StudentFilters{
		Search:          query.Search,
		IncludeInactive: query.IncludeInactive,
		Pagination:      query.pagination(),
	}
	if query.Grade != "" {
		filters.Grade = &query.Grade
	}
	if query.Gender != "" {
		filters.Gender = &query.Gender
	}

	students, total, err := s.repo.Student().List(ctx, filters)
	if err != nil {
		return nil, wrapRepoError(err, "list students")
	}

	return &StudentListResponse{
		Students: students,
		ListMeta: newListMeta(total, query.ListQuery),
	}, nil
}

func (s *studentService) GetStats(ctx context.Context) (*repositories.StudentStats, error) {
	var stats repositories.StudentStats
	err := s.cache.Stats.CacheOrExecute(ctx, "student:overview", &stats, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		return s.repo.Student().GetStats(ctx, recentStatsLimit)
	})
	if err != nil {
		return nil, wrapRepoError(err, "student stats")
	}
	return &stats, nil
}
