package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"robot-rental-admin/internal/enums"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Error messages use the wire field names, not the Go ones.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("customer_type", func(fl validator.FieldLevel) bool {
		_, err := enums.CustomerTypeFromCode(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("device_status", func(fl validator.FieldLevel) bool {
		_, err := enums.DeviceStatusFromCode(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		_, err := enums.OrderStatusFromCode(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("rental_status", func(fl validator.FieldLevel) bool {
		_, err := enums.RentalStatusFromCode(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("charity_activity_status", func(fl validator.FieldLevel) bool {
		_, err := enums.CharityActivityStatusFromCode(fl.Field().String())
		return err == nil
	})
}

// TagErrors runs the tag-declared constraints of a request DTO and returns
// them as an accumulated message list. Services run this before the
// per-entity form validators; domain rules that cannot be expressed as tags
// live in those validators.
func TagErrors(s interface{}) Errors {
	var errs Errors

	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		errs.Add(err.Error())
		return errs
	}

	for _, fe := range fieldErrors {
		errs.Add(tagMessage(fe))
	}
	return errs
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "customer_type", "device_status", "order_status", "rental_status", "charity_activity_status":
		return fmt.Sprintf("%s is not a recognized %s code", fe.Field(), strings.ReplaceAll(fe.Tag(), "_", " "))
	default:
		return fmt.Sprintf("%s failed the %s constraint", fe.Field(), fe.Tag())
	}
}
