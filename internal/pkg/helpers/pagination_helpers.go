package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
)

const (
	defaultPage = 1
	defaultSize = 10
	maxSize     = 100
)

// ParsePaginationParams reads page and size query parameters, falling back
// to sane defaults and capping the page size.
func ParsePaginationParams(c *gin.Context) (page, size int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}

	size, err = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if err != nil || size < 1 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}

	return page, size
}

// NewPaginationInfo builds paging metadata from the request parameters and
// the total match count.
func NewPaginationInfo(page, size int, total int64) dto.PaginationInfo {
	totalPages := int(total / int64(size))
	if total%int64(size) != 0 {
		totalPages++
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  total,
	}
}
