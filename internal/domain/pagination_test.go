package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequestClamping(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		want       PageRequest
	}{
		{"defaults kept", 1, 10, PageRequest{Page: 1, Size: 10}},
		{"zero page", 0, 10, PageRequest{Page: 1, Size: 10}},
		{"negative page", -3, 5, PageRequest{Page: 1, Size: 5}},
		{"zero size", 2, 0, PageRequest{Page: 2, Size: DefaultPageSize}},
		{"oversized", 1, 500, PageRequest{Page: 1, Size: MaxPageSize}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageRequest(tt.page, tt.size))
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, NewPageRequest(1, 10).Offset())
	assert.Equal(t, 30, NewPageRequest(4, 10).Offset())
}

func TestPageTotalPages(t *testing.T) {
	req := NewPageRequest(1, 10)

	assert.Equal(t, 3, NewPage([]int{}, 25, req).TotalPages())
	assert.Equal(t, 2, NewPage([]int{}, 20, req).TotalPages())
	assert.Equal(t, 0, NewPage([]int{}, 0, req).TotalPages())
	assert.Equal(t, 0, Page[int]{TotalElements: 5}.TotalPages())
}

func TestNewPageNeverNilItems(t *testing.T) {
	page := NewPage[Category](nil, 0, NewPageRequest(1, 10))
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestNewPageRequestKeepsOffsetRepresentable(t *testing.T) {
	req := NewPageRequest(math.MaxInt, MaxPageSize)
	assert.GreaterOrEqual(t, req.Offset(), 0)

	req = NewPageRequest(922337203685477582, 10)
	assert.GreaterOrEqual(t, req.Offset(), 0)
	assert.Equal(t, 10, req.Size)
}
