package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int
		wantPage     int
		wantPageSize int
	}{
		{"zero values fall back to defaults", 0, 0, 1, 20},
		{"negative values fall back to defaults", -3, -1, 1, 20},
		{"valid values pass through", 4, 50, 4, 50},
		{"oversized page size is capped", 1, 500, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := NormalizePagination(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, size)
		})
	}
}

func TestRequireValidPagination(t *testing.T) {
	assert.True(t, RequireValidPagination(1, 1).Valid())
	assert.True(t, RequireValidPagination(10, 100).Valid())

	assert.False(t, RequireValidPagination(0, 20).Valid())
	assert.False(t, RequireValidPagination(-1, 20).Valid())
	assert.False(t, RequireValidPagination(1, 0).Valid())
	assert.False(t, RequireValidPagination(1, 101).Valid())

	errs := RequireValidPagination(0, 200)
	assert.Len(t, errs, 2, "both failures accumulate")
}
