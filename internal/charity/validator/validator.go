package validator

import (
	"fmt"
	"regexp"
	"time"

	"robot-rental-admin/internal/charity/model"
	"robot-rental-admin/internal/enums"
	"robot-rental-admin/internal/validation"
)

const (
	maxParticipants = 100000
	maxStudentCount = 100000
	maxDeviceCount  = 10000

	// maxActivityMoney caps budget and actual cost, in cents.
	maxActivityMoney = 1_000_000_000

	// costOverrunFactor flags an actual cost so far past the budget that
	// the figures are probably mistyped.
	costOverrunFactor = 3
)

// namePattern covers institution and contact-person names: CJK or latin
// characters, digits, spaces and a few connector symbols, 2 to 50 runes.
var namePattern = regexp.MustCompile(`^[\p{Han}a-zA-Z0-9\s\-_()（）]{2,50}$`)

// earliestProgramDate is the floor for activity and cooperation dates;
// anything earlier predates the program and is a data-entry error.
var earliestProgramDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// institutionPhoneOptions accept service hotlines: partner organizations
// often publish a 400 switchboard rather than a direct line.
var institutionPhoneOptions = validation.PhoneOptions{
	RejectTestNumbers: true,
	AllowHotline:      true,
}

var institutionEmailOptions = validation.EmailOptions{
	AllowTemporary: false,
	RequireTrusted: false,
}

func ValidateCreateInstitution(req *model.CreateInstitutionRequest) error {
	var errs validation.Errors

	errs.Merge(validatePartnerName(req.Name, "institution name"))
	errs.Merge(validatePartnerName(req.ContactPerson, "contact person"))

	if _, err := enums.InstitutionTypeFromCode(req.Type); err != nil {
		errs.Add("institution type must be one of the allowed values")
	}

	errs.Merge(validation.ValidatePhone(req.ContactPhone, institutionPhoneOptions))

	if req.Email != "" {
		errs.Merge(validation.ValidateEmail(req.Email, institutionEmailOptions))
	}

	errs.Merge(validateHeadcount(req.StudentCount, maxStudentCount, "student count"))
	errs.Merge(validateHeadcount(req.DeviceCount, maxDeviceCount, "device count"))

	if req.CooperationDate != "" {
		errs.Merge(validatePastDate(req.CooperationDate, "cooperation date"))
	}

	return validation.FailIfInvalid("charity institution", errs)
}

func ValidateUpdateInstitution(req *model.UpdateInstitutionRequest) error {
	var errs validation.Errors

	if req.Name != nil {
		errs.Merge(validatePartnerName(*req.Name, "institution name"))
	}
	if req.ContactPerson != nil {
		errs.Merge(validatePartnerName(*req.ContactPerson, "contact person"))
	}
	if req.ContactPhone != nil {
		errs.Merge(validation.ValidatePhone(*req.ContactPhone, institutionPhoneOptions))
	}
	if req.Email != nil && *req.Email != "" {
		errs.Merge(validation.ValidateEmail(*req.Email, institutionEmailOptions))
	}
	if req.Status != nil {
		if _, err := enums.InstitutionStatusFromCode(*req.Status); err != nil {
			errs.Add("institution status must be one of the allowed values")
		}
	}
	if req.StudentCount != nil {
		errs.Merge(validateHeadcount(*req.StudentCount, maxStudentCount, "student count"))
	}
	if req.DeviceCount != nil {
		errs.Merge(validateHeadcount(*req.DeviceCount, maxDeviceCount, "device count"))
	}
	if req.LastVisitDate != nil && *req.LastVisitDate != "" {
		errs.Merge(validatePastDate(*req.LastVisitDate, "last visit date"))
	}

	return validation.FailIfInvalid("charity institution", errs)
}

func ValidateCreateActivity(req *model.CreateActivityRequest) error {
	var errs validation.Errors

	if _, err := enums.CharityActivityTypeFromCode(req.Type); err != nil {
		errs.Add("activity type must be one of the allowed values")
	}

	if req.Date != "" {
		if d, err := validation.ParseDate(req.Date); err != nil {
			errs.Add("activity date is not a valid yyyy-MM-dd date")
		} else if d.Before(earliestProgramDate) {
			errs.Add("activity date must not be before 2000-01-01")
		}
	}

	errs.Merge(validateHeadcount(req.Participants, maxParticipants, "participants"))
	errs.Merge(validateMoney(req.Budget, "budget"))

	return validation.FailIfInvalid("charity activity", errs)
}

func ValidateUpdateActivity(req *model.UpdateActivityRequest) error {
	var errs validation.Errors

	if req.Date != nil && *req.Date != "" {
		if d, err := validation.ParseDate(*req.Date); err != nil {
			errs.Add("activity date is not a valid yyyy-MM-dd date")
		} else if d.Before(earliestProgramDate) {
			errs.Add("activity date must not be before 2000-01-01")
		}
	}
	if req.Participants != nil {
		errs.Merge(validateHeadcount(*req.Participants, maxParticipants, "participants"))
	}
	if req.Budget != nil {
		errs.Merge(validateMoney(*req.Budget, "budget"))
	}
	if req.ActualCost != nil {
		errs.Merge(validateMoney(*req.ActualCost, "actual cost"))
	}
	if req.Budget != nil && req.ActualCost != nil && *req.Budget > 0 {
		if *req.ActualCost > *req.Budget*costOverrunFactor {
			errs.Add("actual cost exceeds the budget by too much, check the figures")
		}
	}

	return validation.FailIfInvalid("charity activity", errs)
}

// ValidateActivityFilter checks the listing parameters. Pagination is
// normalized at the query layer, not rejected here.
func ValidateActivityFilter(req *model.ActivityFilterRequest) error {
	var errs validation.Errors

	errs.Merge(validation.ValidateKeyword(req.Keyword))
	errs.Merge(validation.ValidateEnumField(req.Type, "activity type", enums.CharityActivityTypeCodes()))
	errs.Merge(validation.ValidateEnumField(req.Status, "activity status", enums.CharityActivityStatusCodes()))
	errs.Merge(validation.ValidateDateRangeStrings(req.StartDate, req.EndDate))

	return validation.FailIfInvalid("charity activity search", errs)
}

func ValidateInstitutionFilter(req *model.InstitutionFilterRequest) error {
	var errs validation.Errors

	errs.Merge(validation.ValidateKeyword(req.Keyword))
	errs.Merge(validation.ValidateEnumField(req.Type, "institution type", enums.InstitutionTypeCodes()))
	errs.Merge(validation.ValidateEnumField(req.Status, "institution status", enums.InstitutionStatusCodes()))

	return validation.FailIfInvalid("charity institution search", errs)
}

func validatePartnerName(name, field string) validation.Errors {
	var errs validation.Errors
	if name == "" {
		errs.Add(fmt.Sprintf("%s is required", field))
		return errs
	}
	if !namePattern.MatchString(name) {
		errs.Add(fmt.Sprintf("%s must be 2-50 letters, digits, spaces or connector symbols", field))
	}
	return errs
}

func validateHeadcount(count, limit int, field string) validation.Errors {
	var errs validation.Errors
	if count < 0 {
		errs.Add(fmt.Sprintf("%s must not be negative", field))
	} else if count > limit {
		errs.Add(fmt.Sprintf("%s must not exceed %d", field, limit))
	}
	return errs
}

func validateMoney(amount int64, field string) validation.Errors {
	var errs validation.Errors
	if amount < 0 {
		errs.Add(fmt.Sprintf("%s must not be negative", field))
	} else if amount > maxActivityMoney {
		errs.Add(fmt.Sprintf("%s must not exceed %d cents", field, int64(maxActivityMoney)))
	}
	return errs
}

func validatePastDate(value, field string) validation.Errors {
	var errs validation.Errors

	d, err := validation.ParseDate(value)
	if err != nil {
		errs.Add(fmt.Sprintf("%s is not a valid yyyy-MM-dd date", field))
		return errs
	}

	if d.After(time.Now()) {
		errs.Add(fmt.Sprintf("%s must not be in the future", field))
	}
	if d.Before(earliestProgramDate) {
		errs.Add(fmt.Sprintf("%s must not be before 2000-01-01", field))
	}
	return errs
}
