package repositories

import "strings"

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// normalizePage clamps page and pageSize and returns the row offset
func normalizePage(page, pageSize *int) int {
	if *page < 1 {
		*page = 1
	}
	if *pageSize < 1 {
		*pageSize = defaultPageSize
	}
	if *pageSize > maxPageSize {
		*pageSize = maxPageSize
	}
	return (*page - 1) * *pageSize
}

// likePattern builds a case-insensitive LIKE pattern; callers compare against LOWER(column)
func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
