package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot-rental-admin/internal/admin/model"
	"robot-rental-admin/internal/config"
	apperrors "robot-rental-admin/pkg/errors"
	"robot-rental-admin/pkg/utils"
)

type fakeAdminRepository struct {
	byUsername map[string]*model.AdminUser
}

func (f *fakeAdminRepository) Create(_ context.Context, admin *model.AdminUser) error {
	f.byUsername[admin.Username] = admin
	return nil
}

func (f *fakeAdminRepository) GetByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	admin, ok := f.byUsername[username]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	clone := *admin
	return &clone, nil
}

func (f *fakeAdminRepository) GetByID(_ context.Context, id uuid.UUID) (*model.AdminUser, error) {
	for _, admin := range f.byUsername {
		if admin.ID == id {
			clone := *admin
			return &clone, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeAdminRepository) Update(_ context.Context, admin *model.AdminUser) error {
	f.byUsername[admin.Username] = admin
	return nil
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := utils.HashPassword("Sup3rSecret")
	require.NoError(t, err)

	repo := &fakeAdminRepository{byUsername: map[string]*model.AdminUser{
		"admin": {
			ID:           uuid.New(),
			Username:     "admin",
			PasswordHash: hash,
			Role:         "admin",
		},
	}}
	jwtConfig := config.JWTConfig{Secret: "test-secret", ExpiryHours: 1}
	svc := NewAdminService(repo, jwtConfig)

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		resp, err := svc.Login(ctx, &model.LoginRequest{Username: "admin", Password: "Sup3rSecret"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "admin", resp.Username)

		claims, err := utils.ValidateToken(resp.Token, jwtConfig.Secret)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, "admin", claims.Role)

		stored, err := repo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.NotNil(t, stored.LastLoginAt)
	})

	t.Run("wrong password and unknown user fail identically", func(t *testing.T) {
		_, wrongPassword := svc.Login(ctx, &model.LoginRequest{Username: "admin", Password: "nope"})
		_, unknownUser := svc.Login(ctx, &model.LoginRequest{Username: "ghost", Password: "nope"})

		assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownUser, apperrors.ErrInvalidCredentials)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		resp, err := svc.Login(ctx, &model.LoginRequest{Username: "admin", Password: "Sup3rSecret"})
		require.NoError(t, err)

		_, err = utils.ValidateToken(resp.Token, "other-secret")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
