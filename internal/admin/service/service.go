package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"robot-rental-admin/internal/admin/model"
	"robot-rental-admin/internal/admin/repository"
	"robot-rental-admin/internal/config"
	"robot-rental-admin/internal/logger"
	"robot-rental-admin/internal/validation"
	apperrors "robot-rental-admin/pkg/errors"
	"robot-rental-admin/pkg/utils"
)

type AdminService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type adminService struct {
	repo repository.AdminRepository
	jwt  config.JWTConfig
}

func NewAdminService(repo repository.AdminRepository, jwt config.JWTConfig) AdminService {
	return &adminService{repo: repo, jwt: jwt}
}

// Login verifies credentials and issues a signed token. A missing user and
// a wrong password produce the same error so usernames cannot be enumerated.
func (s *adminService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if err := validation.FailIfInvalid("login", validation.TagErrors(req)); err != nil {
		return nil, err
	}

	admin, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(admin.PasswordHash, req.Password) {
		logger.Warn("failed login attempt", zap.String("username", req.Username))
		return nil, apperrors.ErrInvalidCredentials
	}

	expiry := time.Duration(s.jwt.ExpiryHours) * time.Hour
	token, err := utils.GenerateToken(admin.ID, admin.Username, admin.Role, s.jwt.Secret, expiry)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin.LastLoginAt = &now
	if err := s.repo.Update(ctx, admin); err != nil {
		logger.Error("failed to record login time",
			zap.String("username", admin.Username), zap.Error(err))
	}

	logger.Info("admin logged in", zap.String("username", admin.Username))

	return &model.LoginResponse{
		Token:     token,
		ExpiresAt: now.Add(expiry),
		UserID:    admin.ID,
		Username:  admin.Username,
		Role:      admin.Role,
	}, nil
}
