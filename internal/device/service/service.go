package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"robot-rental-admin/internal/device/model"
	"robot-rental-admin/internal/device/repository"
	"robot-rental-admin/internal/device/validator"
	"robot-rental-admin/internal/enums"
	"robot-rental-admin/internal/lifecycle"
	"robot-rental-admin/internal/logger"
	"robot-rental-admin/internal/validation"
	apperrors "robot-rental-admin/pkg/errors"
	"robot-rental-admin/pkg/utils"
)

// Battery thresholds below which a device is flagged for maintenance.
const (
	batteryWarningLevel = 20
	batteryUrgentLevel  = 10
)

type DeviceService interface {
	Create(ctx context.Context, req *model.CreateDeviceRequest) (*model.DeviceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.DeviceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateDeviceRequest) (*model.DeviceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, filter *model.DeviceFilterRequest) (*model.DeviceListResponse, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, req *model.ChangeStatusRequest) (*model.DeviceResponse, error)
	BatchOperation(ctx context.Context, req *model.BatchOperationRequest) (*model.BatchResult, error)
	ApplyTelemetry(ctx context.Context, update *model.TelemetryUpdate) error
}

type deviceService struct {
	repo repository.DeviceRepository
}

func NewDeviceService(repo repository.DeviceRepository) DeviceService {
	return &deviceService{repo: repo}
}

func (s *deviceService) Create(ctx context.Context, req *model.CreateDeviceRequest) (*model.DeviceResponse, error) {
	if err := validation.FailIfInvalid("device", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	if err := validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetBySerial(ctx, req.SerialNumber); err == nil {
		return nil, apperrors.ErrDuplicateSerial
	}

	now := time.Now()
	device := &model.Device{
		ID:                uuid.New(),
		SerialNumber:      req.SerialNumber,
		Model:             req.Model,
		Name:              utils.SanitizeString(req.Name),
		Status:            enums.DeviceIdle,
		MaintenanceStatus: enums.MaintenanceNormal,
		DailyRentalPrice:  req.DailyRentalPrice,
		BatteryLevel:      100,
		FirmwareVersion:   req.FirmwareVersion,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, device); err != nil {
		logger.Error("failed to register device",
			zap.String("serial_number", req.SerialNumber), zap.Error(err))
		return nil, err
	}

	logger.Info("device registered",
		zap.String("device_id", device.ID.String()),
		zap.String("serial_number", device.SerialNumber),
		zap.String("model", device.Model))

	return device.ToResponse(), nil
}

func (s *deviceService) GetByID(ctx context.Context, id uuid.UUID) (*model.DeviceResponse, error) {
	device, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return device.ToResponse(), nil
}

func (s *deviceService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateDeviceRequest) (*model.DeviceResponse, error) {
	if err := validation.FailIfInvalid("device", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	if err := validator.ValidateUpdate(req); err != nil {
		return nil, err
	}

	device, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		device.Name = utils.SanitizeString(*req.Name)
	}
	if req.DailyRentalPrice != nil {
		device.DailyRentalPrice = *req.DailyRentalPrice
	}
	if req.FirmwareVersion != nil {
		device.FirmwareVersion = *req.FirmwareVersion
	}
	device.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, device); err != nil {
		return nil, err
	}

	return device.ToResponse(), nil
}

func (s *deviceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("device deleted", zap.String("device_id", id.String()))
	return nil
}

func (s *deviceService) Search(ctx context.Context, filter *model.DeviceFilterRequest) (*model.DeviceListResponse, error) {
	if err := validator.ValidateFilter(filter); err != nil {
		return nil, err
	}

	devices, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	page, pageSize := validation.NormalizePagination(filter.Page, filter.PageSize)

	responses := make([]model.DeviceResponse, 0, len(devices))
	for i := range devices {
		responses = append(responses, *devices[i].ToResponse())
	}

	return &model.DeviceListResponse{
		Devices:    responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

func (s *deviceService) ChangeStatus(ctx context.Context, id uuid.UUID, req *model.ChangeStatusRequest) (*model.DeviceResponse, error) {
	if err := validation.FailIfInvalid("device status", validation.TagErrors(req)); err != nil {
		return nil, err
	}

	device, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := lifecycle.Devices.ValidateStatusChange(string(device.Status), req.Status)
	if !result.Valid {
		return nil, validation.FailIfInvalid("device status", result.Errors)
	}

	newStatus, err := enums.DeviceStatusFromCode(req.Status)
	if err != nil {
		return nil, err
	}

	if device.Status == newStatus {
		return device.ToResponse(), nil
	}

	previous := device.Status
	device.Status = newStatus
	device.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, device); err != nil {
		return nil, err
	}

	logger.Info("device status changed",
		zap.String("device_id", id.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(newStatus)))

	return device.ToResponse(), nil
}

// BatchOperation applies one operation to many devices, recording per-ID
// outcomes. Invalid requests fail as a whole before any device is touched.
func (s *deviceService) BatchOperation(ctx context.Context, req *model.BatchOperationRequest) (*model.BatchResult, error) {
	if err := validation.FailIfInvalid("device batch", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	if err := validator.ValidateBatch(req); err != nil {
		return nil, err
	}

	result := &model.BatchResult{
		Succeeded: []string{},
		Failed:    map[string]string{},
	}

	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			result.Failed[raw] = "invalid device ID"
			continue
		}

		if err := s.applyBatchItem(ctx, id, req); err != nil {
			result.Failed[raw] = err.Error()
			continue
		}

		result.Succeeded = append(result.Succeeded, raw)
	}

	logger.Info("device batch operation finished",
		zap.String("operation", req.Operation),
		zap.Int("succeeded", len(result.Succeeded)),
		zap.Int("failed", len(result.Failed)))

	return result, nil
}

func (s *deviceService) applyBatchItem(ctx context.Context, id uuid.UUID, req *model.BatchOperationRequest) error {
	switch req.Operation {
	case "updateStatus":
		_, err := s.ChangeStatus(ctx, id, &model.ChangeStatusRequest{Status: req.Status})
		return err

	case "maintenance":
		_, err := s.ChangeStatus(ctx, id, &model.ChangeStatusRequest{
			Status: string(enums.DeviceMaintenance),
		})
		return err

	case "delete":
		return s.Delete(ctx, id)

	default:
		return apperrors.NewAppError("UNSUPPORTED_OPERATION", "unsupported batch operation", nil)
	}
}

// ApplyTelemetry records a device report and derives its maintenance
// status from the battery level.
func (s *deviceService) ApplyTelemetry(ctx context.Context, update *model.TelemetryUpdate) error {
	device, err := s.repo.GetBySerial(ctx, update.SerialNumber)
	if err != nil {
		return err
	}

	now := time.Now()
	device.BatteryLevel = update.BatteryLevel
	device.MaintenanceStatus = maintenanceStatusFor(update.BatteryLevel)
	if update.FirmwareVersion != "" {
		device.FirmwareVersion = update.FirmwareVersion
	}
	device.LastSeenAt = &now
	device.UpdatedAt = now

	return s.repo.Update(ctx, device)
}

func maintenanceStatusFor(batteryLevel int) enums.MaintenanceStatus {
	switch {
	case batteryLevel < batteryUrgentLevel:
		return enums.MaintenanceUrgent
	case batteryLevel < batteryWarningLevel:
		return enums.MaintenanceWarning
	default:
		return enums.MaintenanceNormal
	}
}
