package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "robot-rental-admin/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(fn func(c *gin.Context)) (*httptest.ResponseRecorder, Envelope) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	fn(c)

	var envelope Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		panic(err)
	}
	return w, envelope
}

func TestSuccessEnvelope(t *testing.T) {
	before := time.Now().UnixMilli()
	w, envelope := record(func(c *gin.Context) {
		Success(c, http.StatusCreated, "created", map[string]string{"id": "42"})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusCreated, envelope.Code)
	assert.Equal(t, "created", envelope.Message)
	assert.GreaterOrEqual(t, envelope.Timestamp, before)
	require.NotNil(t, envelope.Data)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation failure", apperrors.NewValidationFailed("order", []string{"bad"}), http.StatusBadRequest},
		{"customer not found", apperrors.ErrCustomerNotFound, http.StatusNotFound},
		{"device not found", apperrors.ErrDeviceNotFound, http.StatusNotFound},
		{"duplicate order number", apperrors.ErrDuplicateOrderNumber, http.StatusConflict},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrInvalidToken, http.StatusUnauthorized},
		{"bad date", apperrors.ErrInvalidDate, http.StatusBadRequest},
		{"app error", apperrors.NewAppError("DEVICE_UNAVAILABLE", "device is not available", nil), http.StatusBadRequest},
		{"unknown error", assertionError{}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, envelope := record(func(c *gin.Context) {
				FromError(c, tt.err)
			})
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus, envelope.Code)
			assert.Nil(t, envelope.Data)
		})
	}
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	_, envelope := record(func(c *gin.Context) {
		FromError(c, assertionError{})
	})
	assert.Equal(t, "internal server error", envelope.Message)
}

func TestValidationMessagesSurviveTheTrip(t *testing.T) {
	err := apperrors.NewValidationFailed("order", []string{"first", "second"})
	_, envelope := record(func(c *gin.Context) {
		FromError(c, err)
	})
	assert.Contains(t, envelope.Message, "order validation failed (2 errors)")
	assert.Contains(t, envelope.Message, "first; second")
}

type assertionError struct{}

func (assertionError) Error() string { return "sql: connection refused" }
