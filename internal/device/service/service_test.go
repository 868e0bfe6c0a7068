package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot-rental-admin/internal/device/model"
	"robot-rental-admin/internal/enums"
	apperrors "robot-rental-admin/pkg/errors"
)

// fakeDeviceRepository is an in-memory stand-in for the gorm repository.
type fakeDeviceRepository struct {
	devices map[uuid.UUID]*model.Device
}

func newFakeDeviceRepository() *fakeDeviceRepository {
	return &fakeDeviceRepository{devices: map[uuid.UUID]*model.Device{}}
}

func (f *fakeDeviceRepository) Create(_ context.Context, device *model.Device) error {
	for _, d := range f.devices {
		if d.SerialNumber == device.SerialNumber {
			return apperrors.ErrDuplicateSerial
		}
	}
	clone := *device
	f.devices[device.ID] = &clone
	return nil
}

func (f *fakeDeviceRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Device, error) {
	d, ok := f.devices[id]
	if !ok {
		return nil, apperrors.ErrDeviceNotFound
	}
	clone := *d
	return &clone, nil
}

func (f *fakeDeviceRepository) GetBySerial(_ context.Context, serial string) (*model.Device, error) {
	for _, d := range f.devices {
		if d.SerialNumber == serial {
			clone := *d
			return &clone, nil
		}
	}
	return nil, apperrors.ErrDeviceNotFound
}

func (f *fakeDeviceRepository) Update(_ context.Context, device *model.Device) error {
	if _, ok := f.devices[device.ID]; !ok {
		return apperrors.ErrDeviceNotFound
	}
	clone := *device
	f.devices[device.ID] = &clone
	return nil
}

func (f *fakeDeviceRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.devices[id]; !ok {
		return apperrors.ErrDeviceNotFound
	}
	delete(f.devices, id)
	return nil
}

func (f *fakeDeviceRepository) Search(_ context.Context, _ *model.DeviceFilterRequest) ([]model.Device, int64, error) {
	out := make([]model.Device, 0, len(f.devices))
	for _, d := range f.devices {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDeviceRepository) CountByStatus(_ context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, d := range f.devices {
		counts[string(d.Status)]++
	}
	return counts, nil
}

func seedDevice(repo *fakeDeviceRepository, status enums.DeviceStatus) *model.Device {
	device := &model.Device{
		ID:                uuid.New(),
		SerialNumber:      "YX-" + uuid.NewString()[:8],
		Model:             "YX-EDU-2024",
		Name:              "Test Unit",
		Status:            status,
		MaintenanceStatus: enums.MaintenanceNormal,
		DailyRentalPrice:  10000,
		BatteryLevel:      80,
	}
	repo.devices[device.ID] = device
	return device
}

func TestChangeStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("idle to active succeeds", func(t *testing.T) {
		repo := newFakeDeviceRepository()
		device := seedDevice(repo, enums.DeviceIdle)
		svc := NewDeviceService(repo)

		resp, err := svc.ChangeStatus(ctx, device.ID, &model.ChangeStatusRequest{Status: "active"})
		require.NoError(t, err)
		assert.Equal(t, "active", resp.Status)
	})

	t.Run("retired is terminal", func(t *testing.T) {
		repo := newFakeDeviceRepository()
		device := seedDevice(repo, enums.DeviceRetired)
		svc := NewDeviceService(repo)

		_, err := svc.ChangeStatus(ctx, device.ID, &model.ChangeStatusRequest{Status: "active"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")
	})

	t.Run("same status is a no-op success", func(t *testing.T) {
		repo := newFakeDeviceRepository()
		device := seedDevice(repo, enums.DeviceIdle)
		svc := NewDeviceService(repo)

		resp, err := svc.ChangeStatus(ctx, device.ID, &model.ChangeStatusRequest{Status: "idle"})
		require.NoError(t, err)
		assert.Equal(t, "idle", resp.Status)
	})

	t.Run("unknown device fails", func(t *testing.T) {
		svc := NewDeviceService(newFakeDeviceRepository())

		_, err := svc.ChangeStatus(ctx, uuid.New(), &model.ChangeStatusRequest{Status: "active"})
		assert.ErrorIs(t, err, apperrors.ErrDeviceNotFound)
	})
}

func TestBatchOperation(t *testing.T) {
	ctx := context.Background()

	t.Run("mixed outcomes are reported per ID", func(t *testing.T) {
		repo := newFakeDeviceRepository()
		idle := seedDevice(repo, enums.DeviceIdle)
		retired := seedDevice(repo, enums.DeviceRetired)
		svc := NewDeviceService(repo)

		missing := uuid.NewString()
		result, err := svc.BatchOperation(ctx, &model.BatchOperationRequest{
			IDs:       []string{idle.ID.String(), retired.ID.String(), missing, "not-a-uuid"},
			Operation: "updateStatus",
			Status:    "active",
		})
		require.NoError(t, err)

		assert.Equal(t, []string{idle.ID.String()}, result.Succeeded)
		assert.Len(t, result.Failed, 3)
		assert.Contains(t, result.Failed[retired.ID.String()], "not allowed")
		assert.Contains(t, result.Failed[missing], "not found")
		assert.Equal(t, "invalid device ID", result.Failed["not-a-uuid"])
	})

	t.Run("oversized batch fails as a whole", func(t *testing.T) {
		repo := newFakeDeviceRepository()
		svc := NewDeviceService(repo)

		ids := make([]string, 101)
		for i := range ids {
			ids[i] = uuid.NewString()
		}

		_, err := svc.BatchOperation(ctx, &model.BatchOperationRequest{
			IDs:       ids,
			Operation: "delete",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "100")
	})
}

func TestApplyTelemetry(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		battery int
		want    enums.MaintenanceStatus
	}{
		{"healthy battery", 80, enums.MaintenanceNormal},
		{"boundary stays normal", 20, enums.MaintenanceNormal},
		{"low battery warns", 15, enums.MaintenanceWarning},
		{"critical battery is urgent", 5, enums.MaintenanceUrgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeDeviceRepository()
			device := seedDevice(repo, enums.DeviceActive)
			svc := NewDeviceService(repo)

			err := svc.ApplyTelemetry(ctx, &model.TelemetryUpdate{
				SerialNumber: device.SerialNumber,
				BatteryLevel: tt.battery,
			})
			require.NoError(t, err)

			stored, err := repo.GetByID(ctx, device.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored.MaintenanceStatus)
			assert.Equal(t, tt.battery, stored.BatteryLevel)
			assert.NotNil(t, stored.LastSeenAt)
		})
	}
}
