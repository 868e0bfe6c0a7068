package validator

import (
	"fmt"
	"regexp"
	"strings"

	"robot-rental-admin/internal/enums"
	"robot-rental-admin/internal/order/model"
	"robot-rental-admin/internal/validation"
)

var orderNumberPattern = regexp.MustCompile(`^[A-Z]{3}\d{10}$`)

const (
	minAddressLength = 10
	maxAddressLength = 500
)

var orderEmailOptions = validation.EmailOptions{}

var orderPhoneOptions = validation.PhoneOptions{
	RejectVirtual:     false,
	RejectTestNumbers: true,
}

// ValidateCreate runs every domain rule for a new order and accumulates
// all failures before the boundary raises a single error.
func ValidateCreate(req *model.CreateOrderRequest) error {
	var errs validation.Errors

	if req.OrderNumber == "" {
		errs.Add("order number is required")
	} else if !orderNumberPattern.MatchString(req.OrderNumber) {
		errs.Add("order number must be 3 uppercase letters followed by 10 digits")
	}

	errs.Merge(validation.ValidateEnumField(req.Type, "order type", model.AllowedOrderTypes))
	if req.Type == "" {
		errs.Add("order type is required")
	}

	errs.Merge(validateAmounts(req))
	errs.Merge(validateItems(req.Items))
	errs.Merge(validateRentalDates(req))
	errs.Merge(validateAddress(req.DeliveryAddress))

	if req.ContactPhone != "" {
		errs.Merge(validation.ValidatePhone(req.ContactPhone, orderPhoneOptions))
	}
	if req.ContactEmail != "" {
		errs.Merge(validation.ValidateEmail(req.ContactEmail, orderEmailOptions))
	}

	return validation.FailIfInvalid("order", errs)
}

// ValidateFilter checks the search parameters of an order listing,
// including the capped date range.
func ValidateFilter(req *model.OrderFilterRequest) error {
	var errs validation.Errors

	errs.Merge(validation.ValidateKeyword(req.Keyword))
	errs.Merge(validation.ValidateEnumField(req.Status, "order status", enums.OrderStatusCodes()))
	errs.Merge(validation.ValidateEnumField(req.Type, "order type", model.AllowedOrderTypes))
	errs.Merge(validation.ValidateDateRangeStrings(req.StartDate, req.EndDate))

	return validation.FailIfInvalid("order search", errs)
}

// validateAmounts checks sign constraints and the exact amount equation.
// Integer cents make the equality exact; there is no epsilon.
func validateAmounts(req *model.CreateOrderRequest) validation.Errors {
	var errs validation.Errors

	if req.Subtotal < 0 {
		errs.Add("subtotal must not be negative")
	}
	if req.ShippingFee < 0 {
		errs.Add("shipping fee must not be negative")
	}
	if req.Discount < 0 {
		errs.Add("discount must not be negative")
	}
	if req.TotalAmount < 0 {
		errs.Add("total amount must not be negative")
	}

	if errs.Valid() && req.Subtotal+req.ShippingFee-req.Discount != req.TotalAmount {
		errs.Add(fmt.Sprintf(
			"amount calculation error: subtotal %d + shipping %d - discount %d does not equal total %d",
			req.Subtotal, req.ShippingFee, req.Discount, req.TotalAmount))
	}

	return errs
}

func validateItems(items []model.OrderItemRequest) validation.Errors {
	var errs validation.Errors

	if len(items) == 0 {
		errs.Add("order must contain at least one item")
		return errs
	}

	for i, item := range items {
		if strings.TrimSpace(item.ProductName) == "" {
			errs.Add(fmt.Sprintf("item %d: product name is required", i+1))
		}
		if item.Quantity <= 0 {
			errs.Add(fmt.Sprintf("item %d: quantity must be positive", i+1))
		}
		if item.UnitPrice <= 0 {
			errs.Add(fmt.Sprintf("item %d: unit price must be positive", i+1))
		}
		if item.Quantity > 0 && item.UnitPrice > 0 &&
			int64(item.Quantity)*item.UnitPrice != item.TotalPrice {
			errs.Add(fmt.Sprintf(
				"item %d: total price does not equal quantity times unit price", i+1))
		}
	}

	return errs
}

func validateRentalDates(req *model.CreateOrderRequest) validation.Errors {
	var errs validation.Errors

	if req.Type == model.TypeRental && req.RentalStartDate == "" {
		errs.Add("rental orders require a rental start date")
	}

	errs.Merge(validation.ValidateDateRangeStrings(req.RentalStartDate, req.RentalEndDate))
	return errs
}

func validateAddress(address string) validation.Errors {
	var errs validation.Errors

	clean := strings.TrimSpace(address)
	if clean == "" {
		errs.Add("delivery address is required")
		return errs
	}

	length := len([]rune(clean))
	if length < minAddressLength || length > maxAddressLength {
		errs.Add(fmt.Sprintf("delivery address must be between %d and %d characters",
			minAddressLength, maxAddressLength))
	}

	return errs
}
