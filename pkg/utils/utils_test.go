package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "robot-rental-admin/pkg/errors"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.True(t, CheckPassword(hash, "Sup3rSecret"))
	assert.False(t, CheckPassword(hash, "sup3rsecret"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Sup3rSecret"))

	for _, weak := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoNumbersHere"} {
		assert.Error(t, ValidatePassword(weak), "password %q should be rejected", weak)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "admin", "admin", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)

	_, err = ValidateToken(token, "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	expired, err := GenerateToken(userID, "admin", "admin", "secret", -time.Hour)
	require.NoError(t, err)
	_, err = ValidateToken(expired, "secret")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Acme Robotics", SanitizeString("  Acme Robotics  "))
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", SanitizeString("<b>bold</b>"))
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "hello", StripHTML("<p>hello</p>"))
}
