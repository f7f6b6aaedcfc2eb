package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/school-hub/school-service/internal/repositories"
)

const exportPageSize = 500

// ===== SERVICE INTERFACE =====

// ExportService renders resource listings as XLSX workbooks.
type ExportService interface {
	ExportStudents(ctx context.Context) ([]byte, string, error)
	ExportEvents(ctx context.Context) ([]byte, string, error)
}

// ===== SERVICE IMPLEMENTATION =====

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

func (s *exportService) ExportStudents(ctx context.Context) ([]byte, string, error) {
	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Students"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", fmt.Errorf("rename sheet failed: %w", err)
	}

	header := []interface{}{"ID", "Name", "Grade", "Gender", "Parent", "Contact", "Address", "Active", "Created"}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("write header failed: %w", err)
	}

	row := 2
	for page := 1; ; page++ {
		students, total, err := s.repo.Student().List(ctx, repositories.StudentFilters{
			IncludeInactive: true,
			Pagination: repositories.Pagination{
				Limit:  exportPageSize,
				Offset: (page - 1) * exportPageSize,
			},
		})
		if err != nil {
			return nil, "", wrapRepoError(err, "list students")
		}

		for _, student := range students {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, "", fmt.Errorf("cell name failed: %w", err)
			}
			values := []interface{}{
				student.ID,
				student.Name,
				student.Grade,
				student.Gender,
				student.ParentName,
				student.ContactNumber,
				student.Address,
				student.IsActive,
				student.CreatedAt.Format("2006-01-02"),
			}
			if err := file.SetSheetRow(sheet, cell, &values); err != nil {
				return nil, "", fmt.Errorf("write row failed: %w", err)
			}
			row++
		}

		if int64(page*exportPageSize) >= total {
			break
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook failed: %w", err)
	}

	filename := fmt.Sprintf("students-%s.xlsx", time.Now().Format("2006-01-02"))
	s.logger.Info("students exported", "rows", row-2)

	return buf.Bytes(), filename, nil
}

func (s *exportService) ExportEvents(ctx context.Context) ([]byte, string, error) {
	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Events"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", fmt.Errorf("rename sheet failed: %w", err)
	}

	header := []interface{}{"ID", "Title", "Category", "Date", "Venue", "Status", "Organizer", "Audience"}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("write header failed: %w", err)
	}

	row := 2
	for page := 1; ; page++ {
		eventList, total, err := s.repo.Event().List(ctx, repositories.EventFilters{
			Pagination: repositories.Pagination{
				Limit:  exportPageSize,
				Offset: (page - 1) * exportPageSize,
			},
		})
		if err != nil {
			return nil, "", wrapRepoError(err, "list events")
		}

		for _, event := range eventList {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, "", fmt.Errorf("cell name failed: %w", err)
			}
			values := []interface{}{
				event.ID,
				event.Title,
				string(event.Category),
				event.Date.Format("2006-01-02"),
				event.Venue,
				string(event.Status),
				event.Organizer,
				event.Audience,
			}
			if err := file.SetSheetRow(sheet, cell, &values); err != nil {
				return nil, "", fmt.Errorf("write row failed: %w", err)
			}
			row++
		}

		if int64(page*exportPageSize) >= total {
			break
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook failed: %w", err)
	}

	filename := fmt.Sprintf("events-%s.xlsx", time.Now().Format("2006-01-02"))
	s.logger.Info("events exported", "rows", row-2)

	return buf.Bytes(), filename, nil
}
