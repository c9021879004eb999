package dtos

import "math"

// maxPageSize caps how many items one page may carry.
const maxPageSize = 50

// PaginationParams are the page coordinates a client may request.
// Values are normalized, never rejected: page numbers below 1 become 1 and
// page sizes are clamped to [1, 50].
type PaginationParams struct {
	PageNumber int `json:"pageNumber" form:"pageNumber"`
	PageSize   int `json:"pageSize" form:"pageSize"`
}

// Normalize returns the params with defaults applied and limits enforced.
func (p PaginationParams) Normalize() PaginationParams {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

// Offset returns how many items precede the requested page.
func (p PaginationParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// PagedResult is one page of items plus the paging metadata clients need
// to render navigation.
type PagedResult[T any] struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
	Items       []T `json:"items"`
}

// NewPagedResult assembles a page from already-sliced items and a total count.
// Used when the store does the slicing (LIMIT/OFFSET).
func NewPagedResult[T any](items []T, totalCount, pageNumber, pageSize int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		CurrentPage: pageNumber,
		TotalPages:  int(math.Ceil(float64(totalCount) / float64(pageSize))),
		PageSize:    pageSize,
		TotalCount:  totalCount,
		Items:       items,
	}
}

// Paginate slices an in-memory collection into the requested page.
// A page past the end yields an empty item list, not an error.
func Paginate[T any](source []T, params PaginationParams) PagedResult[T] {
	params = params.Normalize()
	start := params.Offset()
	end := start + params.PageSize
	if start > len(source) {
		start = len(source)
	}
	if end > len(source) {
		end = len(source)
	}
	return NewPagedResult(source[start:end], len(source), params.PageNumber, params.PageSize)
}
