package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateKeyword(t *testing.T) {
	assert.True(t, ValidateKeyword("").Valid(), "empty keyword means no filter")
	assert.True(t, ValidateKeyword("writing robot").Valid())
	assert.True(t, ValidateKeyword(strings.Repeat("k", MaxKeywordLength)).Valid())

	assert.False(t, ValidateKeyword(strings.Repeat("k", MaxKeywordLength+1)).Valid())
	assert.False(t, ValidateKeyword("<script>alert(1)</script>").Valid())
	assert.False(t, ValidateKeyword("robot <b>bold</b>").Valid())
	assert.False(t, ValidateKeyword("' or 1=1").Valid())
	assert.False(t, ValidateKeyword(`" OR name = `).Valid())
	assert.False(t, ValidateKeyword("x; drop table customers").Valid())
	assert.False(t, ValidateKeyword("name -- comment").Valid())
}

func TestValidateName(t *testing.T) {
	assert.True(t, ValidateName("YX Writing Robot Pro", "device name").Valid())

	errs := ValidateName("", "device name")
	assert.Equal(t, Errors{"device name is required"}, errs)

	errs = ValidateName(strings.Repeat("n", MaxNameLength+1), "customer name")
	assert.Contains(t, errs[0], "200")

	assert.False(t, ValidateName("Acme <script>", "customer name").Valid())
}
