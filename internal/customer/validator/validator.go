package validator

import (
	"robot-rental-admin/internal/customer/model"
	"robot-rental-admin/internal/enums"
	"robot-rental-admin/internal/validation"
)

// contactEmailOptions: customer contact addresses must be long-lived, so
// disposable mailboxes are refused but any real provider is accepted.
var contactEmailOptions = validation.EmailOptions{
	AllowTemporary: false,
	RequireTrusted: false,
}

var contactPhoneOptions = validation.PhoneOptions{
	RejectVirtual:     true,
	RejectTestNumbers: true,
}

// ValidateCreate runs the domain rules for a new customer on top of the
// tag-level checks. All failures are accumulated before the boundary raises.
func ValidateCreate(req *model.CreateCustomerRequest) error {
	var errs validation.Errors

	errs.Merge(validation.ValidateName(req.Name, "customer name"))

	if _, err := enums.CustomerTypeFromCode(req.Type); err != nil {
		errs.Add("customer type must be one of the allowed values")
	}

	errs.Merge(validation.ValidatePhone(req.ContactPhone, contactPhoneOptions))

	if req.ContactEmail != "" {
		errs.Merge(validation.ValidateEmail(req.ContactEmail, contactEmailOptions))
	}

	return validation.FailIfInvalid("customer", errs)
}

// ValidateUpdate checks only the fields present in a partial update.
func ValidateUpdate(req *model.UpdateCustomerRequest) error {
	var errs validation.Errors

	if req.Name != nil {
		errs.Merge(validation.ValidateName(*req.Name, "customer name"))
	}

	if req.Type != nil {
		if _, err := enums.CustomerTypeFromCode(*req.Type); err != nil {
			errs.Add("customer type must be one of the allowed values")
		}
	}

	if req.ContactPhone != nil {
		errs.Merge(validation.ValidatePhone(*req.ContactPhone, contactPhoneOptions))
	}

	if req.ContactEmail != nil && *req.ContactEmail != "" {
		errs.Merge(validation.ValidateEmail(*req.ContactEmail, contactEmailOptions))
	}

	return validation.FailIfInvalid("customer", errs)
}

// ValidateFilter checks the search parameters of a customer listing.
// Pagination is normalized later at the query layer, not rejected here.
func ValidateFilter(req *model.CustomerFilterRequest) error {
	var errs validation.Errors

	errs.Merge(validation.ValidateKeyword(req.Keyword))
	errs.Merge(validation.ValidateEnumField(req.Type, "customer type", enums.CustomerTypeCodes()))

	return validation.FailIfInvalid("customer search", errs)
}
