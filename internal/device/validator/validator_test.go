package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot-rental-admin/internal/device/model"
	apperrors "robot-rental-admin/pkg/errors"
)

func validCreateRequest() *model.CreateDeviceRequest {
	return &model.CreateDeviceRequest{
		SerialNumber:     "YX-2024-00017",
		Model:            "YX-EDU-2024",
		Name:             "Classroom Unit 17",
		DailyRentalPrice: 15000,
	}
}

func TestValidateCreate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, ValidateCreate(validCreateRequest()))
	})

	t.Run("lowercase serial is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.SerialNumber = "yx-2024-00017"

		err := ValidateCreate(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "serial number")
	})

	t.Run("unknown model is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.Model = "YX-LAB-2023"

		err := ValidateCreate(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "YX-LAB-2023")
	})

	t.Run("zero price is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.DailyRentalPrice = 0

		err := ValidateCreate(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "daily rental price")
	})

	t.Run("all failures accumulate", func(t *testing.T) {
		err := ValidateCreate(&model.CreateDeviceRequest{})
		require.Error(t, err)

		vf, ok := apperrors.IsValidationFailed(err)
		require.True(t, ok)
		assert.Equal(t, 4, vf.Count)
	})
}

func TestValidateBatch(t *testing.T) {
	ids := []string{uuid.NewString(), uuid.NewString()}

	t.Run("maintenance needs no status", func(t *testing.T) {
		assert.NoError(t, ValidateBatch(&model.BatchOperationRequest{
			IDs:       ids,
			Operation: "maintenance",
		}))
	})

	t.Run("updateStatus requires a status", func(t *testing.T) {
		err := ValidateBatch(&model.BatchOperationRequest{
			IDs:       ids,
			Operation: "updateStatus",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is required")
	})

	t.Run("updateStatus rejects unknown status", func(t *testing.T) {
		err := ValidateBatch(&model.BatchOperationRequest{
			IDs:       ids,
			Operation: "updateStatus",
			Status:    "hibernating",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hibernating")
	})

	t.Run("unknown operation is rejected", func(t *testing.T) {
		err := ValidateBatch(&model.BatchOperationRequest{
			IDs:       ids,
			Operation: "reboot",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reboot")
	})
}

func TestValidateFilter(t *testing.T) {
	assert.NoError(t, ValidateFilter(&model.DeviceFilterRequest{}))
	assert.NoError(t, ValidateFilter(&model.DeviceFilterRequest{
		Status: "idle",
		Model:  "YX-PRO-2024",
	}))

	err := ValidateFilter(&model.DeviceFilterRequest{Status: "broken"})
	require.Error(t, err)
}
