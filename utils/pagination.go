package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageParams is the validated pagination window.
type PageParams struct {
	Page  int
	Limit int
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageParams reads page/limit, defaulting to page 1 with defaultLimit
// per page. Malformed values are errors, as is an explicit non-positive
// limit; a page below 1 is clamped to the first page.
func ParsePageParams(c *gin.Context, defaultLimit int) (PageParams, error) {
	p := PageParams{Page: 1, Limit: defaultLimit}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, ErrInvalidCriteria.Wrap(fmt.Errorf("invalid page %q", raw))
		}
		if n > 0 {
			p.Page = n
		}
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return p, ErrInvalidCriteria.Wrap(fmt.Errorf("invalid limit %q", raw))
		}
		p.Limit = n
	}
	return p, nil
}

// TotalPages is ceil(total / limit).
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
