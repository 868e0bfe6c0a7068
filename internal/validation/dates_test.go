package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "robot-rental-admin/pkg/errors"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 14, d.Day())

	_, err = ParseDate("2025-13-01")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate, "month 13 is impossible")

	_, err = ParseDate("2025-02-30")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)

	_, err = ParseDate("14/03/2025")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
}

func TestValidateDateRange(t *testing.T) {
	day := func(s string) *time.Time {
		d, err := time.Parse(DateLayout, s)
		require.NoError(t, err)
		return &d
	}

	assert.True(t, ValidateDateRange(nil, nil).Valid())
	assert.True(t, ValidateDateRange(day("2025-01-01"), nil).Valid())
	assert.True(t, ValidateDateRange(nil, day("2025-01-01")).Valid())
	assert.True(t, ValidateDateRange(day("2025-01-01"), day("2025-06-30")).Valid())
	assert.True(t, ValidateDateRange(day("2024-01-01"), day("2026-01-01")).Valid(), "exactly two years is allowed")

	assert.False(t, ValidateDateRange(day("2025-06-30"), day("2025-01-01")).Valid())
	assert.False(t, ValidateDateRange(day("2024-01-01"), day("2026-01-02")).Valid(), "span over two years")
}

func TestValidateDateRangeStrings(t *testing.T) {
	assert.True(t, ValidateDateRangeStrings("", "").Valid())
	assert.True(t, ValidateDateRangeStrings("2025-01-01", "2025-02-01").Valid())

	errs := ValidateDateRangeStrings("bogus", "2025-02-01")
	assert.Equal(t, Errors{"start date is not a valid yyyy-MM-dd date"}, errs)

	errs = ValidateDateRangeStrings("bad", "worse")
	assert.Len(t, errs, 2)
}
