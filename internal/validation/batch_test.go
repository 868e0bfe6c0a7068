package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = uuid.NewString()
	}
	return ids
}

func TestValidateBatchOperation(t *testing.T) {
	assert.True(t, ValidateBatchOperation(makeIDs(1), "updateStatus").Valid())
	assert.True(t, ValidateBatchOperation(makeIDs(100), "maintenance").Valid())
	assert.True(t, ValidateBatchOperation(makeIDs(5), "delete").Valid())

	errs := ValidateBatchOperation(makeIDs(101), "updateStatus")
	assert.False(t, errs.Valid())
	assert.Contains(t, errs[0], "100")

	errs = ValidateBatchOperation(nil, "updateStatus")
	assert.Equal(t, Errors{"at least one ID is required"}, errs)

	errs = ValidateBatchOperation(makeIDs(3), "reboot")
	assert.False(t, errs.Valid())
	assert.Contains(t, errs[0], "reboot")
}
