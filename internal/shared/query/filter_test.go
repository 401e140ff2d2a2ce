package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter_Offset(t *testing.T) {
	tests := []struct {
		name     string
		filter   PageFilter
		expected int
	}{
		{"first page", PageFilter{Page: 1, Limit: 10}, 0},
		{"third page", PageFilter{Page: 3, Limit: 10}, 20},
		{"zero page", PageFilter{Page: 0, Limit: 10}, 0},
		{"negative page", PageFilter{Page: -2, Limit: 10}, 0},
		{"default limit", PageFilter{Page: 2}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Offset())
		})
	}
}

func TestPageFilter_PageSize(t *testing.T) {
	assert.Equal(t, 10, PageFilter{}.PageSize())
	assert.Equal(t, 25, PageFilter{Limit: 25}.PageSize())
	assert.Equal(t, 100, PageFilter{Limit: 500}.PageSize())
}

func TestPageFilter_NormalizedPage(t *testing.T) {
	assert.Equal(t, 1, PageFilter{}.NormalizedPage())
	assert.Equal(t, 1, PageFilter{Page: -1}.NormalizedPage())
	assert.Equal(t, 7, PageFilter{Page: 7}.NormalizedPage())
}
