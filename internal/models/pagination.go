package models

const (
	// DefaultPageSize is used when the client omits or zeroes the limit.
	DefaultPageSize = 20
	// MaxPageSize caps the client-supplied limit so a single request cannot
	// ask for an unbounded result set.
	MaxPageSize = 100
)

// Pagination holds normalized page/limit values.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewPagination clamps raw client input: page >= 1, 1 <= limit <= MaxPageSize.
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return Pagination{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta is the envelope metadata attached to every paginated listing.
type PageMeta struct {
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int64  `json:"total_pages"`
	Query      string `json:"query,omitempty"`
}

// NewPageMeta computes the meta block; total_pages is ceil(total/limit) and 0
// when total is 0.
func NewPageMeta(p Pagination, total int64) PageMeta {
	limit := int64(p.Limit)
	return PageMeta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: (total + limit - 1) / limit,
	}
}

// PageResponse is the paginated listing envelope.
type PageResponse struct {
	Data interface{} `json:"data"`
	Meta PageMeta    `json:"meta"`
}
