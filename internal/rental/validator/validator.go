package validator

import (
	"robot-rental-admin/internal/enums"
	"robot-rental-admin/internal/rental/model"
	"robot-rental-admin/internal/validation"
)

// ValidateCreate checks a new rental request: both dates must parse and
// form a range of at most two years.
func ValidateCreate(req *model.CreateRentalRequest) error {
	var errs validation.Errors

	if req.DeviceID == "" {
		errs.Add("device ID is required")
	}
	if req.CustomerID == "" {
		errs.Add("customer ID is required")
	}
	if req.StartDate == "" {
		errs.Add("start date is required")
	}
	if req.EndDate == "" {
		errs.Add("end date is required")
	}

	if req.StartDate != "" && req.EndDate != "" {
		errs.Merge(validation.ValidateDateRangeStrings(req.StartDate, req.EndDate))
	}

	return validation.FailIfInvalid("rental", errs)
}

// ValidateFilter checks a rental listing. Unlike the other listings this
// one uses the strict pagination policy: explicit bad values are errors.
func ValidateFilter(req *model.RentalFilterRequest) error {
	var errs validation.Errors

	errs.Merge(validation.ValidateEnumField(req.Status, "rental status", enums.RentalStatusCodes()))
	errs.Merge(validation.RequireValidPagination(req.Page, req.PageSize))

	return validation.FailIfInvalid("rental search", errs)
}
