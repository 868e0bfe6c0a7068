package validator

import (
	"fmt"
	"regexp"

	"robot-rental-admin/internal/device/model"
	"robot-rental-admin/internal/enums"
	"robot-rental-admin/internal/validation"
)

var serialPattern = regexp.MustCompile(`^[A-Z0-9\-]{6,64}$`)

// ValidateCreate runs the domain rules for registering a new device.
func ValidateCreate(req *model.CreateDeviceRequest) error {
	var errs validation.Errors

	if req.SerialNumber == "" {
		errs.Add("serial number is required")
	} else if !serialPattern.MatchString(req.SerialNumber) {
		errs.Add("serial number must be 6-64 uppercase letters, digits or dashes")
	}

	errs.Merge(validateModel(req.Model))
	errs.Merge(validation.ValidateName(req.Name, "device name"))

	if req.DailyRentalPrice <= 0 {
		errs.Add("daily rental price must be positive")
	}

	return validation.FailIfInvalid("device", errs)
}

// ValidateUpdate checks only the fields present in a partial update.
func ValidateUpdate(req *model.UpdateDeviceRequest) error {
	var errs validation.Errors

	if req.Name != nil {
		errs.Merge(validation.ValidateName(*req.Name, "device name"))
	}
	if req.DailyRentalPrice != nil && *req.DailyRentalPrice <= 0 {
		errs.Add("daily rental price must be positive")
	}

	return validation.FailIfInvalid("device", errs)
}

// ValidateBatch checks a batch request before any per-ID work starts.
// The updateStatus operation additionally requires a resolvable status.
func ValidateBatch(req *model.BatchOperationRequest) error {
	errs := validation.ValidateBatchOperation(req.IDs, req.Operation)

	if req.Operation == "updateStatus" {
		if req.Status == "" {
			errs.Add("status is required for the updateStatus operation")
		} else if _, err := enums.DeviceStatusFromCode(req.Status); err != nil {
			errs.Add(fmt.Sprintf("unknown device status %q", req.Status))
		}
	}

	return validation.FailIfInvalid("device batch", errs)
}

// ValidateFilter checks the search parameters of a device listing.
func ValidateFilter(req *model.DeviceFilterRequest) error {
	var errs validation.Errors

	errs.Merge(validation.ValidateKeyword(req.Keyword))
	errs.Merge(validation.ValidateEnumField(req.Status, "device status", enums.DeviceStatusCodes()))
	errs.Merge(validation.ValidateEnumField(req.Model, "device model", model.AllowedModels))

	return validation.FailIfInvalid("device search", errs)
}

func validateModel(m string) validation.Errors {
	var errs validation.Errors

	if m == "" {
		errs.Add("device model is required")
		return errs
	}

	for _, allowed := range model.AllowedModels {
		if m == allowed {
			return errs
		}
	}

	errs.Add(fmt.Sprintf("unknown device model %q", m))
	return errs
}
