package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/school-hub/school-service/internal/repositories"
)

// translateDBError maps GORM errors onto the repository sentinel errors.
// Unique violations arrive as gorm.ErrDuplicatedKey because the driver is
// opened with TranslateError enabled.
func translateDBError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repositories.ErrDuplicate
	}
	return fmt.Errorf("%s failed: %w", operation, err)
}

// applyPaginationAndSorting applies sorting against a whitelist of sort
// columns plus limit/offset. Unknown sort keys fall back to created_at.
func applyPaginationAndSorting(query *gorm.DB, p repositories.Pagination, allowedSortColumns map[string]string) *gorm.DB {
	column, ok := allowedSortColumns[p.SortBy]
	if !ok {
		column = "created_at"
	}

	order := "DESC"
	if p.SortOrder == "asc" || p.SortOrder == "ASC" {
		order = "ASC"
	}

	// Sort key is tie-broken by id so pages are stable under equal keys.
	query = query.Order(fmt.Sprintf("%s %s", column, order)).Order("id ASC")

	if p.Limit > 0 {
		query = query.Limit(p.Limit)
	}
	if p.Offset > 0 {
		query = query.Offset(p.Offset)
	}

	return query
}

// applySearch adds a case-insensitive OR match over the given columns.
func applySearch(query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}

	pattern := "%" + search + "%"
	where := ""
	args := make([]interface{}, 0, len(columns))
	for i, column := range columns {
		if i > 0 {
			where += " OR "
		}
		where += column + " ILIKE ?"
		args = append(args, pattern)
	}

	return query.Where(where, args...)
}

// countBy runs a grouped count and returns bucket -> count.
func countBy(query *gorm.DB, column string) (map[string]int64, error) {
	type bucket struct {
		Key   string
		Count int64
	}

	var buckets []bucket
	err := query.
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		counts[b.Key] = b.Count
	}
	return counts, nil
}
