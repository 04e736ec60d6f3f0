package domain

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Order is a sort key of listing.
type Order struct {
	Column     string
	Descending bool
}

// ListQuery describes a page of records to be listed.
type ListQuery struct {
	// Search is matched (case-insensitive, substring) against searchable columns.
	//
	// Empty Search matches everything.
	Search string

	// SortBy is the column to sort by. It should be one of sortable columns.
	//
	// If empty, the default sort order of the model is used.
	SortBy string

	Descending bool

	// 1-origin page number. 0 is treated as 1.
	Page int

	// Number of records in a page. 0 is treated as DefaultPageSize,
	// and it is capped by MaxPageSize.
	PageSize int
}

// Normalize returns a copy of q with Page and PageSize in valid ranges.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if MaxPageSize < q.PageSize {
		q.PageSize = MaxPageSize
	}
	// the offset of the last page should fit in int.
	if last := math.MaxInt / q.PageSize; last < q.Page {
		q.Page = last
	}
	return q
}

// Offset is the number of records skipped before the page.
func (q ListQuery) Offset() int {
	n := q.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Page is a listing result.
type Page[T any] struct {
	Items []T

	// Total number of records matching the query (ignoring paging).
	Total int

	Page     int
	PageSize int
}

// Pages returns the number of pages.
func (p Page[T]) Pages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}
