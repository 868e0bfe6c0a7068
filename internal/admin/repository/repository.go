package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"robot-rental-admin/internal/admin/model"
	apperrors "robot-rental-admin/pkg/errors"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *model.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.AdminUser, error)
	Update(ctx context.Context, admin *model.AdminUser) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *model.AdminUser) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := r.db.WithContext(ctx).First(&admin, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Update(ctx context.Context, admin *model.AdminUser) error {
	return r.db.WithContext(ctx).Save(admin).Error
}
