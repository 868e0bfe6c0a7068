package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot-rental-admin/internal/rental/model"
	apperrors "robot-rental-admin/pkg/errors"
)

func TestValidateCreate(t *testing.T) {
	valid := &model.CreateRentalRequest{
		DeviceID:   uuid.NewString(),
		CustomerID: uuid.NewString(),
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-30",
	}
	assert.NoError(t, ValidateCreate(valid))

	t.Run("missing fields accumulate", func(t *testing.T) {
		err := ValidateCreate(&model.CreateRentalRequest{})
		require.Error(t, err)

		vf, ok := apperrors.IsValidationFailed(err)
		require.True(t, ok)
		assert.Equal(t, 4, vf.Count)
	})

	t.Run("range beyond two years fails", func(t *testing.T) {
		err := ValidateCreate(&model.CreateRentalRequest{
			DeviceID:   uuid.NewString(),
			CustomerID: uuid.NewString(),
			StartDate:  "2026-01-01",
			EndDate:    "2028-06-01",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 years")
	})
}

func TestValidateFilter(t *testing.T) {
	assert.NoError(t, ValidateFilter(&model.RentalFilterRequest{Page: 1, PageSize: 20}))

	t.Run("implicit pagination is an error here", func(t *testing.T) {
		err := ValidateFilter(&model.RentalFilterRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "page must be at least 1")
	})

	t.Run("unknown status fails", func(t *testing.T) {
		err := ValidateFilter(&model.RentalFilterRequest{Page: 1, PageSize: 20, Status: "paused"})
		require.Error(t, err)
	})
}
