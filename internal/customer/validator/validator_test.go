package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot-rental-admin/internal/customer/model"
	apperrors "robot-rental-admin/pkg/errors"
)

func validCreateRequest() *model.CreateCustomerRequest {
	return &model.CreateCustomerRequest{
		Name:         "Acme Robotics",
		Type:         "enterprise",
		ContactPhone: "13612345678",
		ContactEmail: "ops@gmail.com",
		Address:      "88 Industrial Park Road",
	}
}

func TestValidateCreate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, ValidateCreate(validCreateRequest()))
	})

	t.Run("empty email is allowed", func(t *testing.T) {
		req := validCreateRequest()
		req.ContactEmail = ""
		assert.NoError(t, ValidateCreate(req))
	})

	t.Run("missing name and bad phone accumulate", func(t *testing.T) {
		req := validCreateRequest()
		req.Name = ""
		req.ContactPhone = "12345"

		err := ValidateCreate(req)
		require.Error(t, err)

		vf, ok := apperrors.IsValidationFailed(err)
		require.True(t, ok)
		assert.Equal(t, "customer", vf.Context)
		assert.Equal(t, 2, vf.Count)
		assert.Contains(t, vf.Messages[0], "customer name is required")
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.Type = "vip"

		err := ValidateCreate(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer type")
	})

	t.Run("virtual operator phone is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.ContactPhone = "17012345678"

		err := ValidateCreate(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "virtual operator")
	})

	t.Run("temporary email is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.ContactEmail = "someone@mailinator.com"

		err := ValidateCreate(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "temporary email")
	})

	t.Run("name with markup is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.Name = "<script>alert(1)</script>"

		err := ValidateCreate(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsafe content")
	})
}

func TestValidateUpdate(t *testing.T) {
	t.Run("empty patch passes", func(t *testing.T) {
		assert.NoError(t, ValidateUpdate(&model.UpdateCustomerRequest{}))
	})

	t.Run("only provided fields are checked", func(t *testing.T) {
		bad := "not-a-phone"
		err := ValidateUpdate(&model.UpdateCustomerRequest{ContactPhone: &bad})
		require.Error(t, err)

		vf, ok := apperrors.IsValidationFailed(err)
		require.True(t, ok)
		assert.Equal(t, 1, vf.Count)
	})
}

func TestValidateFilter(t *testing.T) {
	t.Run("empty filter passes", func(t *testing.T) {
		assert.NoError(t, ValidateFilter(&model.CustomerFilterRequest{}))
	})

	t.Run("oversized keyword is rejected", func(t *testing.T) {
		err := ValidateFilter(&model.CustomerFilterRequest{
			Keyword: strings.Repeat("x", 101),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "keyword")
	})

	t.Run("unknown type filter is rejected", func(t *testing.T) {
		err := ValidateFilter(&model.CustomerFilterRequest{Type: "wholesale"})
		require.Error(t, err)
	})
}
