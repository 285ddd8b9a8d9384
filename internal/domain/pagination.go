package domain

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest clamps page and size into the accepted range.
func NewPageRequest(page, size int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	// Keep the offset representable; anything past this is empty anyway.
	if maxPage := math.MaxInt/size + 1; page > maxPage {
		page = maxPage
	}
	return PageRequest{Page: page, Size: size}
}

func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Size
}

func NewPage[T any](items []T, total int64, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:         items,
		TotalElements: total,
		PageNumber:    req.Page,
		PageSize:      req.Size,
	}
}
