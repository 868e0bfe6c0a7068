// Package validation implements the field-level and cross-field checks run
// against inbound request payloads before any repository is touched.
//
// Field validators are pure functions: they read their arguments, never
// mutate them, and return an Errors list instead of raising on the first
// failure. Running the same validator twice on unchanged input yields the
// same list. The single place where accumulated errors become a raised
// failure is FailIfInvalid.
package validation

import (
	apperrors "robot-rental-admin/pkg/errors"
)

// Errors accumulates human-readable validation messages in the order the
// checks were run. An empty list means the input is valid.
type Errors []string

func (e *Errors) Add(msg string) {
	*e = append(*e, msg)
}

// Merge appends every message from other, preserving order.
func (e *Errors) Merge(other Errors) {
	*e = append(*e, other...)
}

func (e Errors) Valid() bool {
	return len(e) == 0
}

// FailIfInvalid converts a non-empty error list into a single
// ValidationFailedError carrying the joined messages and their count.
// It is a no-op for an empty list.
func FailIfInvalid(context string, errs Errors) error {
	if errs.Valid() {
		return nil
	}
	return apperrors.NewValidationFailed(context, errs)
}
