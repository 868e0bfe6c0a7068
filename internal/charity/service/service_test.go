package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot-rental-admin/internal/charity/model"
	apperrors "robot-rental-admin/pkg/errors"
)

type fakeCharityRepository struct {
	institutions map[uuid.UUID]*model.CharityInstitution
	activities   map[uuid.UUID]*model.CharityActivity
}

func newFakeCharityRepository() *fakeCharityRepository {
	return &fakeCharityRepository{
		institutions: map[uuid.UUID]*model.CharityInstitution{},
		activities:   map[uuid.UUID]*model.CharityActivity{},
	}
}

func (f *fakeCharityRepository) CreateInstitution(_ context.Context, institution *model.CharityInstitution) error {
	clone := *institution
	f.institutions[institution.ID] = &clone
	return nil
}

func (f *fakeCharityRepository) GetInstitutionByID(_ context.Context, id uuid.UUID) (*model.CharityInstitution, error) {
	inst, ok := f.institutions[id]
	if !ok {
		return nil, apperrors.ErrInstitutionNotFound
	}
	clone := *inst
	return &clone, nil
}

func (f *fakeCharityRepository) UpdateInstitution(_ context.Context, institution *model.CharityInstitution) error {
	if _, ok := f.institutions[institution.ID]; !ok {
		return apperrors.ErrInstitutionNotFound
	}
	clone := *institution
	f.institutions[institution.ID] = &clone
	return nil
}

func (f *fakeCharityRepository) DeleteInstitution(_ context.Context, id uuid.UUID) error {
	if _, ok := f.institutions[id]; !ok {
		return apperrors.ErrInstitutionNotFound
	}
	delete(f.institutions, id)
	return nil
}

func (f *fakeCharityRepository) SearchInstitutions(_ context.Context, _ *model.InstitutionFilterRequest) ([]model.CharityInstitution, int64, error) {
	out := make([]model.CharityInstitution, 0, len(f.institutions))
	for _, inst := range f.institutions {
		out = append(out, *inst)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCharityRepository) CreateActivity(_ context.Context, activity *model.CharityActivity) error {
	clone := *activity
	f.activities[activity.ID] = &clone
	return nil
}

func (f *fakeCharityRepository) GetActivityByID(_ context.Context, id uuid.UUID) (*model.CharityActivity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, apperrors.ErrActivityNotFound
	}
	clone := *a
	return &clone, nil
}

func (f *fakeCharityRepository) UpdateActivity(_ context.Context, activity *model.CharityActivity) error {
	if _, ok := f.activities[activity.ID]; !ok {
		return apperrors.ErrActivityNotFound
	}
	clone := *activity
	f.activities[activity.ID] = &clone
	return nil
}

func (f *fakeCharityRepository) DeleteActivity(_ context.Context, id uuid.UUID) error {
	if _, ok := f.activities[id]; !ok {
		return apperrors.ErrActivityNotFound
	}
	delete(f.activities, id)
	return nil
}

func (f *fakeCharityRepository) SearchActivities(_ context.Context, _ *model.ActivityFilterRequest) ([]model.CharityActivity, int64, error) {
	out := make([]model.CharityActivity, 0, len(f.activities))
	for _, a := range f.activities {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCharityRepository) Stats(_ context.Context) (*model.CharityStats, error) {
	return &model.CharityStats{}, nil
}

func institutionRequest() *model.CreateInstitutionRequest {
	return &model.CreateInstitutionRequest{
		Name:          "Sunrise Primary School",
		Type:          "school",
		Location:      "Chaoyang District, Beijing",
		ContactPerson: "Li Wei",
		ContactPhone:  "400-800-1234",
		StudentCount:  650,
		DeviceCount:   12,
	}
}

func activityRequest() *model.CreateActivityRequest {
	return &model.CreateActivityRequest{
		Title:        "Robot Writing Workshop",
		Type:         "education",
		Date:         "2026-10-01",
		Location:     "Sunrise Primary School",
		Organizer:    "YX Robotics",
		Participants: 120,
		Budget:       500000,
	}
}

func TestCreateInstitution(t *testing.T) {
	ctx := context.Background()

	t.Run("new institution starts active", func(t *testing.T) {
		svc := NewCharityService(newFakeCharityRepository())

		resp, err := svc.CreateInstitution(ctx, institutionRequest())
		require.NoError(t, err)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, "school", resp.Type)
	})

	t.Run("missing required fields are rejected up front", func(t *testing.T) {
		svc := NewCharityService(newFakeCharityRepository())

		req := institutionRequest()
		req.ContactPerson = ""
		req.Location = ""

		_, err := svc.CreateInstitution(ctx, req)
		require.Error(t, err)

		vf, ok := apperrors.IsValidationFailed(err)
		require.True(t, ok)
		assert.Contains(t, vf.Messages, "contact_person is required")
		assert.Contains(t, vf.Messages, "location is required")
	})
}

func TestCreateActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("new activity starts planned", func(t *testing.T) {
		svc := NewCharityService(newFakeCharityRepository())

		resp, err := svc.CreateActivity(ctx, activityRequest())
		require.NoError(t, err)
		assert.Equal(t, "planned", resp.Status)
	})

	t.Run("unknown institution is refused", func(t *testing.T) {
		svc := NewCharityService(newFakeCharityRepository())

		req := activityRequest()
		req.InstitutionID = uuid.NewString()

		_, err := svc.CreateActivity(ctx, req)
		require.ErrorIs(t, err, apperrors.ErrInstitutionNotFound)
	})

	t.Run("activity links to an existing institution", func(t *testing.T) {
		repo := newFakeCharityRepository()
		svc := NewCharityService(repo)

		inst, err := svc.CreateInstitution(ctx, institutionRequest())
		require.NoError(t, err)

		req := activityRequest()
		req.InstitutionID = inst.ID.String()

		resp, err := svc.CreateActivity(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, resp.InstitutionID)
		assert.Equal(t, inst.ID, *resp.InstitutionID)
	})
}

func TestChangeActivityStatus(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (CharityService, uuid.UUID) {
		t.Helper()
		svc := NewCharityService(newFakeCharityRepository())
		resp, err := svc.CreateActivity(ctx, activityRequest())
		require.NoError(t, err)
		return svc, resp.ID
	}

	t.Run("planned moves to ongoing", func(t *testing.T) {
		svc, id := seed(t)

		resp, err := svc.ChangeActivityStatus(ctx, id, &model.ChangeActivityStatusRequest{Status: "ongoing"})
		require.NoError(t, err)
		assert.Equal(t, "ongoing", resp.Status)
	})

	t.Run("planned cannot jump to completed", func(t *testing.T) {
		svc, id := seed(t)

		_, err := svc.ChangeActivityStatus(ctx, id, &model.ChangeActivityStatusRequest{Status: "completed"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")
	})

	t.Run("completed is terminal", func(t *testing.T) {
		svc, id := seed(t)

		_, err := svc.ChangeActivityStatus(ctx, id, &model.ChangeActivityStatusRequest{Status: "ongoing"})
		require.NoError(t, err)
		_, err = svc.ChangeActivityStatus(ctx, id, &model.ChangeActivityStatusRequest{Status: "completed"})
		require.NoError(t, err)

		_, err = svc.ChangeActivityStatus(ctx, id, &model.ChangeActivityStatusRequest{Status: "ongoing"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")
	})

	t.Run("same-status request is a no-op", func(t *testing.T) {
		svc, id := seed(t)

		resp, err := svc.ChangeActivityStatus(ctx, id, &model.ChangeActivityStatusRequest{Status: "planned"})
		require.NoError(t, err)
		assert.Equal(t, "planned", resp.Status)
	})

	t.Run("unknown status code is rejected by the tag layer", func(t *testing.T) {
		svc, id := seed(t)

		_, err := svc.ChangeActivityStatus(ctx, id, &model.ChangeActivityStatusRequest{Status: "archived"})
		require.Error(t, err)

		vf, ok := apperrors.IsValidationFailed(err)
		require.True(t, ok)
		assert.Contains(t, vf.Messages, "status is not a recognized charity activity status code")
	})
}

func TestUpdateActivityCostGuard(t *testing.T) {
	ctx := context.Background()
	svc := NewCharityService(newFakeCharityRepository())

	resp, err := svc.CreateActivity(ctx, activityRequest())
	require.NoError(t, err)

	budget := int64(100000)
	cost := int64(300001)
	_, err = svc.UpdateActivity(ctx, resp.ID, &model.UpdateActivityRequest{
		Budget:     &budget,
		ActualCost: &cost,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds the budget")
}
