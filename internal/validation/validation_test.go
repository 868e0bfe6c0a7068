package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "robot-rental-admin/pkg/errors"
)

func TestFailIfInvalid(t *testing.T) {
	assert.NoError(t, FailIfInvalid("create customer", nil))
	assert.NoError(t, FailIfInvalid("create customer", Errors{}))

	errs := Errors{"name is required", "email format is invalid"}
	err := FailIfInvalid("create customer", errs)
	require.Error(t, err)

	var vf *apperrors.ValidationFailedError
	require.True(t, errors.As(err, &vf))
	assert.Equal(t, "create customer", vf.Context)
	assert.Equal(t, 2, vf.Count)
	assert.Contains(t, err.Error(), "name is required; email format is invalid")
	assert.Contains(t, err.Error(), "2 errors")
}

func TestErrorsAccumulateInOrder(t *testing.T) {
	var errs Errors
	errs.Add("first")
	errs.Merge(Errors{"second", "third"})

	assert.Equal(t, Errors{"first", "second", "third"}, errs)
	assert.False(t, errs.Valid())
}
