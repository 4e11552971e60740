package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultPage is the first page of any listing.
	DefaultPage = 1
	// TicketPageSize is the fixed page size of the ticket listing.
	TicketPageSize = 20
	// MaxPageSize caps page sizes accepted from the query string.
	MaxPageSize = 100
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ValidatePagination normalizes pagination parameters. Page defaults to 1,
// page size falls back to the given default and is capped at MaxPageSize.
func ValidatePagination(page, pageSize, defaultPageSize int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// ParsePage parses the 1-based page number from the query string.
func ParsePage(c *gin.Context) int {
	return parseQueryInt(c, "page", DefaultPage)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		return 1
	}
	return pages
}
