package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	devicerepo "robot-rental-admin/internal/device/repository"
	"robot-rental-admin/internal/enums"
	"robot-rental-admin/internal/lifecycle"
	"robot-rental-admin/internal/logger"
	"robot-rental-admin/internal/rental/model"
	"robot-rental-admin/internal/rental/repository"
	"robot-rental-admin/internal/rental/validator"
	"robot-rental-admin/internal/validation"
	apperrors "robot-rental-admin/pkg/errors"
	"robot-rental-admin/pkg/utils"
)

type RentalService interface {
	Create(ctx context.Context, req *model.CreateRentalRequest) (*model.RentalResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.RentalResponse, error)
	List(ctx context.Context, filter *model.RentalFilterRequest) (*model.RentalListResponse, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, req *model.ChangeRentalStatusRequest) (*model.RentalResponse, error)
	MarkOverdue(ctx context.Context) (int, error)
}

type rentalService struct {
	repo    repository.RentalRepository
	devices devicerepo.DeviceRepository
}

func NewRentalService(repo repository.RentalRepository, devices devicerepo.DeviceRepository) RentalService {
	return &rentalService{repo: repo, devices: devices}
}

// Create opens a rental on an idle device and marks the device active.
func (s *rentalService) Create(ctx context.Context, req *model.CreateRentalRequest) (*model.RentalResponse, error) {
	if err := validation.FailIfInvalid("rental", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	if err := validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return nil, validation.FailIfInvalid("rental", validation.Errors{"device ID is not a valid UUID"})
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, validation.FailIfInvalid("rental", validation.Errors{"customer ID is not a valid UUID"})
	}

	startDate, err := validation.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := validation.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	device, err := s.devices.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if device.Status != enums.DeviceIdle {
		return nil, apperrors.NewAppError("DEVICE_UNAVAILABLE",
			"device is not available for rental", nil)
	}

	now := time.Now()
	rental := &model.Rental{
		ID:         uuid.New(),
		DeviceID:   deviceID,
		CustomerID: customerID,
		Status:     enums.RentalActive,
		StartDate:  startDate,
		EndDate:    endDate,
		DailyRate:  device.DailyRentalPrice,
		Notes:      utils.SanitizeText(req.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, rental); err != nil {
		return nil, err
	}

	device.Status = enums.DeviceActive
	device.UpdatedAt = now
	if err := s.devices.Update(ctx, device); err != nil {
		logger.Error("failed to mark rented device active",
			zap.String("device_id", deviceID.String()), zap.Error(err))
	}

	logger.Info("rental opened",
		zap.String("rental_id", rental.ID.String()),
		zap.String("device_id", deviceID.String()),
		zap.String("customer_id", customerID.String()))

	return rental.ToResponse(), nil
}

func (s *rentalService) GetByID(ctx context.Context, id uuid.UUID) (*model.RentalResponse, error) {
	rental, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return rental.ToResponse(), nil
}

func (s *rentalService) List(ctx context.Context, filter *model.RentalFilterRequest) (*model.RentalListResponse, error) {
	if err := validator.ValidateFilter(filter); err != nil {
		return nil, err
	}

	rentals, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]model.RentalResponse, 0, len(rentals))
	for i := range rentals {
		responses = append(responses, *rentals[i].ToResponse())
	}

	return &model.RentalListResponse{
		Rentals:    responses,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.PageSize))),
	}, nil
}

// ChangeStatus moves a rental through its lifecycle. Closing a rental
// (completed or cancelled) returns the device to the idle pool.
func (s *rentalService) ChangeStatus(ctx context.Context, id uuid.UUID, req *model.ChangeRentalStatusRequest) (*model.RentalResponse, error) {
	if err := validation.FailIfInvalid("rental status", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	rental, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := lifecycle.Rentals.ValidateStatusChange(string(rental.Status), req.Status)
	if !result.Valid {
		return nil, validation.FailIfInvalid("rental status", result.Errors)
	}

	newStatus, err := enums.RentalStatusFromCode(req.Status)
	if err != nil {
		return nil, err
	}

	if rental.Status == newStatus {
		return rental.ToResponse(), nil
	}

	previous := rental.Status
	now := time.Now()
	rental.Status = newStatus
	rental.UpdatedAt = now
	if newStatus == enums.RentalCompleted {
		rental.ReturnedAt = &now
	}

	if err := s.repo.Update(ctx, rental); err != nil {
		return nil, err
	}

	if newStatus == enums.RentalCompleted || newStatus == enums.RentalCancelled {
		s.releaseDevice(ctx, rental.DeviceID)
	}

	logger.Info("rental status changed",
		zap.String("rental_id", id.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(newStatus)))

	return rental.ToResponse(), nil
}

// MarkOverdue flips every active rental whose end date has passed to
// overdue. It is called by the housekeeping job and returns the count.
func (s *rentalService) MarkOverdue(ctx context.Context) (int, error) {
	due, err := s.repo.ListActiveDueBefore(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	marked := 0
	for i := range due {
		rental := &due[i]
		rental.Status = enums.RentalOverdue
		rental.UpdatedAt = time.Now()

		if err := s.repo.Update(ctx, rental); err != nil {
			logger.Error("failed to mark rental overdue",
				zap.String("rental_id", rental.ID.String()), zap.Error(err))
			continue
		}
		marked++
	}

	if marked > 0 {
		logger.Info("rentals marked overdue", zap.Int("count", marked))
	}
	return marked, nil
}

func (s *rentalService) releaseDevice(ctx context.Context, deviceID uuid.UUID) {
	device, err := s.devices.GetByID(ctx, deviceID)
	if err != nil {
		logger.Error("failed to load device for release",
			zap.String("device_id", deviceID.String()), zap.Error(err))
		return
	}

	// A retired or maintenance device stays where it is.
	if device.Status != enums.DeviceActive {
		return
	}

	device.Status = enums.DeviceIdle
	device.UpdatedAt = time.Now()
	if err := s.devices.Update(ctx, device); err != nil {
		logger.Error("failed to return device to idle pool",
			zap.String("device_id", deviceID.String()), zap.Error(err))
	}
}
