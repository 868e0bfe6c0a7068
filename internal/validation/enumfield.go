package validation

import "fmt"

// ValidateEnumField checks that a filter value belongs to a fixed allowed
// set. Empty values are valid and mean "no filter".
func ValidateEnumField(value, field string, allowed []string) Errors {
	var errs Errors

	if value == "" {
		return errs
	}

	for _, a := range allowed {
		if value == a {
			return errs
		}
	}

	errs.Add(fmt.Sprintf("%s must be one of the allowed values", field))
	return errs
}
