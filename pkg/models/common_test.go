package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageDefaults(t *testing.T) {
	tests := []struct {
		name                string
		page, limit         int
		wantPage, wantLimit int
	}{
		{"unset", 0, 0, 1, 50},
		{"negative", -3, -1, 1, 50},
		{"passthrough", 2, 25, 2, 25},
		{"limit clamped", 1, 500, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := PageDefaults(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(11, 2, 5)
	assert.Equal(t, 11, p.Total)
	assert.Equal(t, 3, p.Pages)

	assert.Equal(t, 0, NewPagination(10, 1, 0).Pages)
	assert.Equal(t, 0, NewPagination(0, 1, 20).Pages)
}
