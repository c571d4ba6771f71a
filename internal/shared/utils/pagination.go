package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saase/requesthub/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ValidatePagination clamps page and limit: page defaults to 1, limit
// defaults to DefaultPageSize and is capped at MaxPageSize.
func ValidatePagination(page, limit int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	return Pagination{Page: page, Limit: limit}
}

// ParsePagination reads page and limit from the query string. page_size is
// accepted as an alias of limit.
func ParsePagination(c *gin.Context) Pagination {
	limit := parseQueryInt(c, "limit", 0)
	if limit == 0 {
		limit = parseQueryInt(c, "page_size", 0)
	}
	return ValidatePagination(parseQueryInt(c, "page", constants.DefaultPage), limit)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages is ceil(total/limit); zero when there is nothing to page.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
