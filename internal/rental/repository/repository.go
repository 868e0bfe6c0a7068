package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"robot-rental-admin/internal/rental/model"
	apperrors "robot-rental-admin/pkg/errors"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *model.Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	Update(ctx context.Context, rental *model.Rental) error
	List(ctx context.Context, filter *model.RentalFilterRequest) ([]model.Rental, int64, error)
	ListActiveDueBefore(ctx context.Context, deadline time.Time) ([]model.Rental, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type rentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rental *model.Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

func (r *rentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	var rental model.Rental
	if err := r.db.WithContext(ctx).First(&rental, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRentalNotFound
		}
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) Update(ctx context.Context, rental *model.Rental) error {
	return r.db.WithContext(ctx).Save(rental).Error
}

func (r *rentalRepository) List(ctx context.Context, filter *model.RentalFilterRequest) ([]model.Rental, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Rental{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.DeviceID != "" {
		query = query.Where("device_id = ?", filter.DeviceID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rentals []model.Rental
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&rentals).Error
	if err != nil {
		return nil, 0, err
	}

	return rentals, total, nil
}

func (r *rentalRepository) ListActiveDueBefore(ctx context.Context, deadline time.Time) ([]model.Rental, error) {
	var rentals []model.Rental
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date < ?", "active", deadline).
		Find(&rentals).Error
	return rentals, err
}

func (r *rentalRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Rental{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}
