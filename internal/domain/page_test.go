package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestNewPaginationParams(t *testing.T) {
	tests := []struct {
		name     string
		page     *int
		pageSize *int
		want     PaginationParams
	}{
		{"nil values use defaults", nil, nil, PaginationParams{Page: 1, PageSize: 10}},
		{"explicit values", intPtr(3), intPtr(25), PaginationParams{Page: 3, PageSize: 25}},
		{"zero page falls back to 1", intPtr(0), nil, PaginationParams{Page: 1, PageSize: 10}},
		{"negative size falls back to default", nil, intPtr(-5), PaginationParams{Page: 1, PageSize: 10}},
		{"size is capped", nil, intPtr(500), PaginationParams{Page: 1, PageSize: MaxPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaginationParams(tt.page, tt.pageSize, DefaultPageSize))
		})
	}
}

func TestPaginationParams_Offset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, PaginationParams{Page: 3, PageSize: 10}.Offset())
}

func TestPageEntry(t *testing.T) {
	assert.True(t, PageNumber(4).IsClickable())
	assert.False(t, Ellipsis().IsClickable())
	assert.Equal(t, 0, Ellipsis().Page)
}
