// Package enums holds the closed status enumerations used across the
// admin backend. Each member is a stable machine code paired with a
// display label. The sets are compiled into the binary; there is no
// dynamic registration. Equality and serialization always use the code,
// never the label.
package enums

import (
	"fmt"

	apperrors "robot-rental-admin/pkg/errors"
)

type CustomerType string

const (
	CustomerIndividual  CustomerType = "individual"
	CustomerEnterprise  CustomerType = "enterprise"
	CustomerInstitution CustomerType = "institution"
)

type DeviceStatus string

const (
	DeviceActive      DeviceStatus = "active"
	DeviceIdle        DeviceStatus = "idle"
	DeviceMaintenance DeviceStatus = "maintenance"
	DeviceRetired     DeviceStatus = "retired"
)

type MaintenanceStatus string

const (
	MaintenanceNormal  MaintenanceStatus = "normal"
	MaintenanceWarning MaintenanceStatus = "warning"
	MaintenanceUrgent  MaintenanceStatus = "urgent"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type RentalStatus string

const (
	RentalPending   RentalStatus = "pending"
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
	RentalCancelled RentalStatus = "cancelled"
	RentalOverdue   RentalStatus = "overdue"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
	OrderOverdue   OrderStatus = "overdue"
)

type CharityActivityType string

const (
	CharityDonation      CharityActivityType = "donation"
	CharityVolunteer     CharityActivityType = "volunteer"
	CharityEducation     CharityActivityType = "education"
	CharityMedical       CharityActivityType = "medical"
	CharityEnvironmental CharityActivityType = "environmental"
	CharityCultural      CharityActivityType = "cultural"
	CharityOther         CharityActivityType = "other"
)

type CharityActivityStatus string

const (
	ActivityPlanned   CharityActivityStatus = "planned"
	ActivityOngoing   CharityActivityStatus = "ongoing"
	ActivityCompleted CharityActivityStatus = "completed"
	ActivityCancelled CharityActivityStatus = "cancelled"
)

type InstitutionType string

const (
	InstitutionSchool     InstitutionType = "school"
	InstitutionHospital   InstitutionType = "hospital"
	InstitutionCommunity  InstitutionType = "community"
	InstitutionNGO        InstitutionType = "ngo"
	InstitutionGovernment InstitutionType = "government"
	InstitutionEnterprise InstitutionType = "enterprise"
	InstitutionOther      InstitutionType = "other"
)

type InstitutionStatus string

const (
	InstitutionActive     InstitutionStatus = "active"
	InstitutionInactive   InstitutionStatus = "inactive"
	InstitutionSuspended  InstitutionStatus = "suspended"
	InstitutionTerminated InstitutionStatus = "terminated"
)

var customerTypeLabels = map[CustomerType]string{
	CustomerIndividual:  "Individual",
	CustomerEnterprise:  "Enterprise",
	CustomerInstitution: "Institution",
}

var deviceStatusLabels = map[DeviceStatus]string{
	DeviceActive:      "Active",
	DeviceIdle:        "Idle",
	DeviceMaintenance: "Under Maintenance",
	DeviceRetired:     "Retired",
}

var maintenanceStatusLabels = map[MaintenanceStatus]string{
	MaintenanceNormal:  "Normal",
	MaintenanceWarning: "Warning",
	MaintenanceUrgent:  "Urgent",
}

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentUnpaid:   "Unpaid",
	PaymentPartial:  "Partially Paid",
	PaymentPaid:     "Paid",
	PaymentRefunded: "Refunded",
}

var rentalStatusLabels = map[RentalStatus]string{
	RentalPending:   "Pending",
	RentalActive:    "Active",
	RentalCompleted: "Completed",
	RentalCancelled: "Cancelled",
	RentalOverdue:   "Overdue",
}

var orderStatusLabels = map[OrderStatus]string{
	OrderPending:   "Pending",
	OrderConfirmed: "Confirmed",
	OrderCompleted: "Completed",
	OrderCancelled: "Cancelled",
	OrderOverdue:   "Overdue",
}

var charityActivityTypeLabels = map[CharityActivityType]string{
	CharityDonation:      "Donation",
	CharityVolunteer:     "Volunteer",
	CharityEducation:     "Education",
	CharityMedical:       "Medical",
	CharityEnvironmental: "Environmental",
	CharityCultural:      "Cultural",
	CharityOther:         "Other",
}

var charityActivityStatusLabels = map[CharityActivityStatus]string{
	ActivityPlanned:   "Planned",
	ActivityOngoing:   "Ongoing",
	ActivityCompleted: "Completed",
	ActivityCancelled: "Cancelled",
}

var institutionTypeLabels = map[InstitutionType]string{
	InstitutionSchool:     "School",
	InstitutionHospital:   "Hospital",
	InstitutionCommunity:  "Community",
	InstitutionNGO:        "NGO",
	InstitutionGovernment: "Government",
	InstitutionEnterprise: "Enterprise",
	InstitutionOther:      "Other",
}

var institutionStatusLabels = map[InstitutionStatus]string{
	InstitutionActive:     "Active",
	InstitutionInactive:   "Inactive",
	InstitutionSuspended:  "Suspended",
	InstitutionTerminated: "Terminated",
}

func unknownCode(kind, code string) error {
	return fmt.Errorf("%w: %s %q", apperrors.ErrUnknownCode, kind, code)
}

func CustomerTypeFromCode(code string) (CustomerType, error) {
	t := CustomerType(code)
	if _, ok := customerTypeLabels[t]; !ok {
		return "", unknownCode("customer type", code)
	}
	return t, nil
}

func DeviceStatusFromCode(code string) (DeviceStatus, error) {
	s := DeviceStatus(code)
	if _, ok := deviceStatusLabels[s]; !ok {
		return "", unknownCode("device status", code)
	}
	return s, nil
}

func MaintenanceStatusFromCode(code string) (MaintenanceStatus, error) {
	s := MaintenanceStatus(code)
	if _, ok := maintenanceStatusLabels[s]; !ok {
		return "", unknownCode("maintenance status", code)
	}
	return s, nil
}

func PaymentStatusFromCode(code string) (PaymentStatus, error) {
	s := PaymentStatus(code)
	if _, ok := paymentStatusLabels[s]; !ok {
		return "", unknownCode("payment status", code)
	}
	return s, nil
}

func RentalStatusFromCode(code string) (RentalStatus, error) {
	s := RentalStatus(code)
	if _, ok := rentalStatusLabels[s]; !ok {
		return "", unknownCode("rental status", code)
	}
	return s, nil
}

func OrderStatusFromCode(code string) (OrderStatus, error) {
	s := OrderStatus(code)
	if _, ok := orderStatusLabels[s]; !ok {
		return "", unknownCode("order status", code)
	}
	return s, nil
}

func CharityActivityTypeFromCode(code string) (CharityActivityType, error) {
	t := CharityActivityType(code)
	if _, ok := charityActivityTypeLabels[t]; !ok {
		return "", unknownCode("charity activity type", code)
	}
	return t, nil
}

func CharityActivityStatusFromCode(code string) (CharityActivityStatus, error) {
	s := CharityActivityStatus(code)
	if _, ok := charityActivityStatusLabels[s]; !ok {
		return "", unknownCode("charity activity status", code)
	}
	return s, nil
}

func InstitutionTypeFromCode(code string) (InstitutionType, error) {
	t := InstitutionType(code)
	if _, ok := institutionTypeLabels[t]; !ok {
		return "", unknownCode("institution type", code)
	}
	return t, nil
}

func InstitutionStatusFromCode(code string) (InstitutionStatus, error) {
	s := InstitutionStatus(code)
	if _, ok := institutionStatusLabels[s]; !ok {
		return "", unknownCode("institution status", code)
	}
	return s, nil
}

func (t CustomerType) Label() string      { return customerTypeLabels[t] }
func (s DeviceStatus) Label() string      { return deviceStatusLabels[s] }
func (s MaintenanceStatus) Label() string { return maintenanceStatusLabels[s] }
func (s PaymentStatus) Label() string     { return paymentStatusLabels[s] }
func (s RentalStatus) Label() string      { return rentalStatusLabels[s] }
func (s OrderStatus) Label() string       { return orderStatusLabels[s] }

func (t CharityActivityType) Label() string   { return charityActivityTypeLabels[t] }
func (s CharityActivityStatus) Label() string { return charityActivityStatusLabels[s] }
func (t InstitutionType) Label() string       { return institutionTypeLabels[t] }
func (s InstitutionStatus) Label() string     { return institutionStatusLabels[s] }

func CustomerTypeCodes() []string {
	return []string{
		string(CustomerIndividual),
		string(CustomerEnterprise),
		string(CustomerInstitution),
	}
}

func DeviceStatusCodes() []string {
	return []string{
		string(DeviceActive),
		string(DeviceIdle),
		string(DeviceMaintenance),
		string(DeviceRetired),
	}
}

func RentalStatusCodes() []string {
	return []string{
		string(RentalPending),
		string(RentalActive),
		string(RentalCompleted),
		string(RentalCancelled),
		string(RentalOverdue),
	}
}

func OrderStatusCodes() []string {
	return []string{
		string(OrderPending),
		string(OrderConfirmed),
		string(OrderCompleted),
		string(OrderCancelled),
		string(OrderOverdue),
	}
}

func PaymentStatusCodes() []string {
	return []string{
		string(PaymentUnpaid),
		string(PaymentPartial),
		string(PaymentPaid),
		string(PaymentRefunded),
	}
}

func CharityActivityTypeCodes() []string {
	return []string{
		string(CharityDonation),
		string(CharityVolunteer),
		string(CharityEducation),
		string(CharityMedical),
		string(CharityEnvironmental),
		string(CharityCultural),
		string(CharityOther),
	}
}

func CharityActivityStatusCodes() []string {
	return []string{
		string(ActivityPlanned),
		string(ActivityOngoing),
		string(ActivityCompleted),
		string(ActivityCancelled),
	}
}

func InstitutionTypeCodes() []string {
	return []string{
		string(InstitutionSchool),
		string(InstitutionHospital),
		string(InstitutionCommunity),
		string(InstitutionNGO),
		string(InstitutionGovernment),
		string(InstitutionEnterprise),
		string(InstitutionOther),
	}
}

func InstitutionStatusCodes() []string {
	return []string{
		string(InstitutionActive),
		string(InstitutionInactive),
		string(InstitutionSuspended),
		string(InstitutionTerminated),
	}
}
