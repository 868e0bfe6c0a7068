package validation

import "fmt"

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePagination is the query-building policy: zero, negative or
// missing values fall back to defaults, and oversized page sizes are capped.
// It never rejects. Use RequireValidPagination at the request boundary when
// bad values must be surfaced to the caller instead.
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// RequireValidPagination is the request-boundary policy: explicit zero,
// negative or over-max values are errors, not silently fixed. The two
// policies coexist deliberately; call sites pick one.
func RequireValidPagination(page, pageSize int) Errors {
	var errs Errors

	if page < 1 {
		errs.Add("page must be at least 1")
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		errs.Add(fmt.Sprintf("page size must be between 1 and %d", MaxPageSize))
	}

	return errs
}
