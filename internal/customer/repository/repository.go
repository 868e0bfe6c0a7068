package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"robot-rental-admin/internal/customer/model"
	"robot-rental-admin/internal/validation"
	apperrors "robot-rental-admin/pkg/errors"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, filter *model.CustomerFilterRequest) ([]model.Customer, int64, error)
	CountByType(ctx context.Context) (map[string]int64, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Customer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) Search(ctx context.Context, filter *model.CustomerFilterRequest) ([]model.Customer, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Customer{})

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("name ILIKE ? OR contact_phone ILIKE ? OR contact_email ILIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := validation.NormalizePagination(filter.Page, filter.PageSize)

	var customers []model.Customer
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

func (r *customerRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Type  string
		Count int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Select("type, COUNT(*) as count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Type] = rw.Count
	}
	return counts, nil
}
