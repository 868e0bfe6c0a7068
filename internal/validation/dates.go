package validation

import (
	"fmt"
	"time"

	apperrors "robot-rental-admin/pkg/errors"
)

const DateLayout = "2006-01-02"

// MaxDateRangeYears caps the span of a search date range.
const MaxDateRangeYears = 2

// ParseDate parses an ISO yyyy-MM-dd date. Unparseable or impossible dates
// (month 13, February 30) fail with ErrInvalidDate.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, value)
	}
	return t, nil
}

// ValidateDateRange checks an optional [start, end] pair: when both bounds
// are present, start must not be after end and the span must not exceed
// two years. A single bound or none is valid.
func ValidateDateRange(start, end *time.Time) Errors {
	var errs Errors

	if start == nil || end == nil {
		return errs
	}

	if start.After(*end) {
		errs.Add("start date must not be after end date")
		return errs
	}

	if end.After(start.AddDate(MaxDateRangeYears, 0, 0)) {
		errs.Add(fmt.Sprintf("date range must not exceed %d years", MaxDateRangeYears))
	}

	return errs
}

// ValidateDateRangeStrings parses both bounds (empty string means absent)
// and then applies ValidateDateRange. Parse failures are reported as
// validation errors rather than raised.
func ValidateDateRangeStrings(start, end string) Errors {
	var errs Errors
	var from, to *time.Time

	if start != "" {
		t, err := ParseDate(start)
		if err != nil {
			errs.Add("start date is not a valid yyyy-MM-dd date")
		} else {
			from = &t
		}
	}

	if end != "" {
		t, err := ParseDate(end)
		if err != nil {
			errs.Add("end date is not a valid yyyy-MM-dd date")
		} else {
			to = &t
		}
	}

	errs.Merge(ValidateDateRange(from, to))
	return errs
}
