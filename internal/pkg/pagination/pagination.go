// Package pagination parses and bounds page/limit parameters and computes
// pagination metadata.
package pagination

import (
	"strconv"

	"github.com/odhav-enterprise/core/internal/pkg/response"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query holds validated pagination parameters.
type Query struct {
	Page  int
	Limit int
}

// Parse validates raw page/limit strings. Malformed numbers fall back to
// defaults; out-of-range values are clamped so skip can never go negative.
func Parse(rawPage, rawLimit string) Query {
	page := parseIntOr(rawPage, DefaultPage)
	limit := parseIntOr(rawLimit, DefaultLimit)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Query{Page: page, Limit: limit}
}

// Skip returns the number of records preceding the requested page.
func (q Query) Skip() int { return (q.Page - 1) * q.Limit }

// Meta computes the pagination metadata for a total match count.
func (q Query) Meta(total int64) response.Pagination {
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return response.Pagination{
		Page:        q.Page,
		Limit:       q.Limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: q.Page < totalPages,
		HasPrevPage: q.Page > 1,
	}
}

func parseIntOr(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
