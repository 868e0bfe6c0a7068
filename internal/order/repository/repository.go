package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"robot-rental-admin/internal/order/model"
	"robot-rental-admin/internal/validation"
	apperrors "robot-rental-admin/pkg/errors"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	Update(ctx context.Context, order *model.Order) error
	Search(ctx context.Context, filter *model.OrderFilterRequest) ([]model.Order, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CreateLog(ctx context.Context, log *model.OrderLog) error
	ListLogs(ctx context.Context, orderID uuid.UUID) ([]model.OrderLog, error)
	PruneLogs(ctx context.Context, before time.Time) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	err := r.db.WithContext(ctx).Create(order).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrDuplicateOrderNumber
	}
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Preload("Items").
		First(&order, "order_number = ?", orderNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) Search(ctx context.Context, filter *model.OrderFilterRequest) ([]model.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Order{})

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("order_number ILIKE ? OR delivery_address ILIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.StartDate != "" {
		if t, err := validation.ParseDate(filter.StartDate); err == nil {
			query = query.Where("created_at >= ?", t)
		}
	}
	if filter.EndDate != "" {
		if t, err := validation.ParseDate(filter.EndDate); err == nil {
			query = query.Where("created_at < ?", t.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := validation.NormalizePagination(filter.Page, filter.PageSize)

	var orders []model.Order
	err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
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

func (r *orderRepository) CreateLog(ctx context.Context, log *model.OrderLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *orderRepository) ListLogs(ctx context.Context, orderID uuid.UUID) ([]model.OrderLog, error) {
	var logs []model.OrderLog
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *orderRepository) PruneLogs(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", before).
		Delete(&model.OrderLog{})
	return result.RowsAffected, result.Error
}
