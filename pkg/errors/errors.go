package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCredentials      = errors.New("invalid username or password")
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrUnauthorized            = errors.New("unauthorized access")
	ErrInsufficientPermissions = errors.New("insufficient permissions")

	ErrCustomerNotFound    = errors.New("customer not found")
	ErrDeviceNotFound      = errors.New("device not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrRentalNotFound      = errors.New("rental record not found")
	ErrAdminNotFound       = errors.New("admin user not found")
	ErrActivityNotFound    = errors.New("charity activity not found")
	ErrInstitutionNotFound = errors.New("charity institution not found")

	ErrDuplicateOrderNumber = errors.New("order number already exists")
	ErrDuplicateSerial      = errors.New("device serial number already exists")

	// ErrUnknownCode is returned when a stored status value does not resolve
	// to a member of its enumeration. It indicates corrupt data or a
	// programmer error, never bad user input.
	ErrUnknownCode = errors.New("unknown enumeration code")

	// ErrInvalidDate is returned for unparseable or impossible dates.
	ErrInvalidDate = errors.New("invalid date")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ValidationFailedError is raised at the aggregation boundary once a
// validation pass has accumulated one or more errors. Field validators
// themselves never raise; they return message lists.
type ValidationFailedError struct {
	Context  string
	Count    int
	Messages []string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("%s validation failed (%d errors): %s",
		e.Context, e.Count, strings.Join(e.Messages, "; "))
}

func NewValidationFailed(context string, messages []string) *ValidationFailedError {
	return &ValidationFailedError{
		Context:  context,
		Count:    len(messages),
		Messages: messages,
	}
}

// IsValidationFailed unwraps err to a ValidationFailedError if it is one.
func IsValidationFailed(err error) (*ValidationFailedError, bool) {
	var vf *ValidationFailedError
	if errors.As(err, &vf) {
		return vf, true
	}
	return nil, false
}
