package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "robot-rental-admin/pkg/errors"
)

func TestFromCode_RoundTrip(t *testing.T) {
	for _, code := range CustomerTypeCodes() {
		got, err := CustomerTypeFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, string(got))
	}

	for _, code := range DeviceStatusCodes() {
		got, err := DeviceStatusFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, string(got))
	}

	for _, code := range RentalStatusCodes() {
		got, err := RentalStatusFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, string(got))
	}

	for _, code := range OrderStatusCodes() {
		got, err := OrderStatusFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, string(got))
	}

	for _, code := range PaymentStatusCodes() {
		got, err := PaymentStatusFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, string(got))
	}

	for _, code := range CharityActivityTypeCodes() {
		got, err := CharityActivityTypeFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, string(got))
	}

	for _, code := range CharityActivityStatusCodes() {
		got, err := CharityActivityStatusFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, string(got))
	}

	for _, code := range InstitutionTypeCodes() {
		got, err := InstitutionTypeFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, string(got))
	}

	for _, code := range InstitutionStatusCodes() {
		got, err := InstitutionStatusFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, string(got))
	}
}

func TestFromCode_UnknownCodeFails(t *testing.T) {
	_, err := CustomerTypeFromCode("bogus")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCode)

	_, err = DeviceStatusFromCode("")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCode)

	_, err = RentalStatusFromCode("ACTIVE")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCode, "codes are case sensitive")

	_, err = OrderStatusFromCode("shipped")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCode)

	_, err = MaintenanceStatusFromCode("broken")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCode)

	_, err = PaymentStatusFromCode("free")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCode)

	_, err = CharityActivityTypeFromCode("party")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCode)

	_, err = CharityActivityStatusFromCode("archived")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCode)

	_, err = InstitutionTypeFromCode("startup")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCode)

	_, err = InstitutionStatusFromCode("closed")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCode)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Individual", CustomerIndividual.Label())
	assert.Equal(t, "Under Maintenance", DeviceMaintenance.Label())
	assert.Equal(t, "Partially Paid", PaymentPartial.Label())
	assert.Equal(t, "Overdue", RentalOverdue.Label())
	assert.Equal(t, "Confirmed", OrderConfirmed.Label())
	assert.Equal(t, "Environmental", CharityEnvironmental.Label())
	assert.Equal(t, "Ongoing", ActivityOngoing.Label())
	assert.Equal(t, "NGO", InstitutionNGO.Label())
	assert.Equal(t, "Suspended", InstitutionSuspended.Label())
}
