package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "robot-rental-admin/pkg/errors"
)

// FromError maps a service error onto the envelope. Validation failures are
// client errors and are returned verbatim; everything unrecognized is a 500
// with a generic message so internals never leak.
func FromError(c *gin.Context, err error) {
	var vf *apperrors.ValidationFailedError
	if errors.As(err, &vf) {
		Error(c, http.StatusBadRequest, vf.Error())
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrCustomerNotFound),
		errors.Is(err, apperrors.ErrDeviceNotFound),
		errors.Is(err, apperrors.ErrOrderNotFound),
		errors.Is(err, apperrors.ErrRentalNotFound),
		errors.Is(err, apperrors.ErrAdminNotFound),
		errors.Is(err, apperrors.ErrActivityNotFound),
		errors.Is(err, apperrors.ErrInstitutionNotFound):
		Error(c, http.StatusNotFound, err.Error())

	case errors.Is(err, apperrors.ErrDuplicateOrderNumber),
		errors.Is(err, apperrors.ErrDuplicateSerial):
		Error(c, http.StatusConflict, err.Error())

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, apperrors.ErrInvalidDate):
		Error(c, http.StatusBadRequest, err.Error())

	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			Error(c, http.StatusBadRequest, appErr.Message)
			return
		}
		Error(c, http.StatusInternalServerError, "internal server error")
	}
}
