package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"robot-rental-admin/internal/charity/model"
	"robot-rental-admin/internal/charity/repository"
	"robot-rental-admin/internal/charity/validator"
	"robot-rental-admin/internal/enums"
	"robot-rental-admin/internal/lifecycle"
	"robot-rental-admin/internal/logger"
	"robot-rental-admin/internal/validation"
	"robot-rental-admin/pkg/utils"
)

type CharityService interface {
	CreateInstitution(ctx context.Context, req *model.CreateInstitutionRequest) (*model.InstitutionResponse, error)
	GetInstitution(ctx context.Context, id uuid.UUID) (*model.InstitutionResponse, error)
	UpdateInstitution(ctx context.Context, id uuid.UUID, req *model.UpdateInstitutionRequest) (*model.InstitutionResponse, error)
	DeleteInstitution(ctx context.Context, id uuid.UUID) error
	SearchInstitutions(ctx context.Context, filter *model.InstitutionFilterRequest) (*model.InstitutionListResponse, error)

	CreateActivity(ctx context.Context, req *model.CreateActivityRequest) (*model.ActivityResponse, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*model.ActivityResponse, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, req *model.UpdateActivityRequest) (*model.ActivityResponse, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	SearchActivities(ctx context.Context, filter *model.ActivityFilterRequest) (*model.ActivityListResponse, error)
	ChangeActivityStatus(ctx context.Context, id uuid.UUID, req *model.ChangeActivityStatusRequest) (*model.ActivityResponse, error)

	Stats(ctx context.Context) (*model.CharityStats, error)
}

type charityService struct {
	repo repository.CharityRepository
}

func NewCharityService(repo repository.CharityRepository) CharityService {
	return &charityService{repo: repo}
}

func (s *charityService) CreateInstitution(ctx context.Context, req *model.CreateInstitutionRequest) (*model.InstitutionResponse, error) {
	if err := validation.FailIfInvalid("charity institution", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	if err := validator.ValidateCreateInstitution(req); err != nil {
		return nil, err
	}

	institutionType, err := enums.InstitutionTypeFromCode(req.Type)
	if err != nil {
		return nil, err
	}

	var cooperationDate *time.Time
	if req.CooperationDate != "" {
		d, err := validation.ParseDate(req.CooperationDate)
		if err != nil {
			return nil, err
		}
		cooperationDate = &d
	}

	now := time.Now()
	institution := &model.CharityInstitution{
		ID:              uuid.New(),
		Name:            utils.SanitizeString(req.Name),
		Type:            institutionType,
		Location:        utils.SanitizeString(req.Location),
		ContactPerson:   utils.SanitizeString(req.ContactPerson),
		ContactPhone:    utils.SanitizeString(req.ContactPhone),
		Email:           utils.SanitizeString(req.Email),
		Status:          enums.InstitutionActive,
		StudentCount:    req.StudentCount,
		DeviceCount:     req.DeviceCount,
		CooperationDate: cooperationDate,
		Notes:           utils.SanitizeText(req.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.CreateInstitution(ctx, institution); err != nil {
		logger.Error("failed to create charity institution", zap.Error(err))
		return nil, err
	}

	logger.Info("charity institution created",
		zap.String("institution_id", institution.ID.String()),
		zap.String("type", string(institution.Type)))

	return institution.ToResponse(), nil
}

func (s *charityService) GetInstitution(ctx context.Context, id uuid.UUID) (*model.InstitutionResponse, error) {
	institution, err := s.repo.GetInstitutionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return institution.ToResponse(), nil
}

func (s *charityService) UpdateInstitution(ctx context.Context, id uuid.UUID, req *model.UpdateInstitutionRequest) (*model.InstitutionResponse, error) {
	if err := validation.FailIfInvalid("charity institution", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	if err := validator.ValidateUpdateInstitution(req); err != nil {
		return nil, err
	}

	institution, err := s.repo.GetInstitutionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		institution.Name = utils.SanitizeString(*req.Name)
	}
	if req.Location != nil {
		institution.Location = utils.SanitizeString(*req.Location)
	}
	if req.ContactPerson != nil {
		institution.ContactPerson = utils.SanitizeString(*req.ContactPerson)
	}
	if req.ContactPhone != nil {
		institution.ContactPhone = utils.SanitizeString(*req.ContactPhone)
	}
	if req.Email != nil {
		institution.Email = utils.SanitizeString(*req.Email)
	}
	if req.Status != nil {
		status, err := enums.InstitutionStatusFromCode(*req.Status)
		if err != nil {
			return nil, err
		}
		institution.Status = status
	}
	if req.StudentCount != nil {
		institution.StudentCount = *req.StudentCount
	}
	if req.DeviceCount != nil {
		institution.DeviceCount = *req.DeviceCount
	}
	if req.LastVisitDate != nil && *req.LastVisitDate != "" {
		d, err := validation.ParseDate(*req.LastVisitDate)
		if err != nil {
			return nil, err
		}
		institution.LastVisitDate = &d
	}
	if req.Notes != nil {
		institution.Notes = utils.SanitizeText(*req.Notes)
	}
	institution.UpdatedAt = time.Now()

	if err := s.repo.UpdateInstitution(ctx, institution); err != nil {
		return nil, err
	}

	return institution.ToResponse(), nil
}

func (s *charityService) DeleteInstitution(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteInstitution(ctx, id); err != nil {
		return err
	}
	logger.Info("charity institution deleted", zap.String("institution_id", id.String()))
	return nil
}

func (s *charityService) SearchInstitutions(ctx context.Context, filter *model.InstitutionFilterRequest) (*model.InstitutionListResponse, error) {
	if err := validator.ValidateInstitutionFilter(filter); err != nil {
		return nil, err
	}

	institutions, total, err := s.repo.SearchInstitutions(ctx, filter)
	if err != nil {
		return nil, err
	}

	page, pageSize := validation.NormalizePagination(filter.Page, filter.PageSize)

	out := make([]model.InstitutionResponse, 0, len(institutions))
	for i := range institutions {
		out = append(out, *institutions[i].ToResponse())
	}

	return &model.InstitutionListResponse{
		Institutions: out,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

func (s *charityService) CreateActivity(ctx context.Context, req *model.CreateActivityRequest) (*model.ActivityResponse, error) {
	if err := validation.FailIfInvalid("charity activity", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	if err := validator.ValidateCreateActivity(req); err != nil {
		return nil, err
	}

	activityType, err := enums.CharityActivityTypeFromCode(req.Type)
	if err != nil {
		return nil, err
	}

	date, err := validation.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	var institutionID *uuid.UUID
	if req.InstitutionID != "" {
		id, err := uuid.Parse(req.InstitutionID)
		if err != nil {
			return nil, validation.FailIfInvalid("charity activity",
				validation.Errors{"institution ID is not a valid UUID"})
		}
		if _, err := s.repo.GetInstitutionByID(ctx, id); err != nil {
			return nil, err
		}
		institutionID = &id
	}

	now := time.Now()
	activity := &model.CharityActivity{
		ID:            uuid.New(),
		Title:         utils.SanitizeString(req.Title),
		Description:   utils.SanitizeText(req.Description),
		Type:          activityType,
		Date:          date,
		Location:      utils.SanitizeString(req.Location),
		Organizer:     utils.SanitizeString(req.Organizer),
		Status:        enums.ActivityPlanned,
		Participants:  req.Participants,
		Budget:        req.Budget,
		InstitutionID: institutionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateActivity(ctx, activity); err != nil {
		logger.Error("failed to create charity activity", zap.Error(err))
		return nil, err
	}

	logger.Info("charity activity created",
		zap.String("activity_id", activity.ID.String()),
		zap.String("type", string(activity.Type)))

	return activity.ToResponse(), nil
}

func (s *charityService) GetActivity(ctx context.Context, id uuid.UUID) (*model.ActivityResponse, error) {
	activity, err := s.repo.GetActivityByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return activity.ToResponse(), nil
}

func (s *charityService) UpdateActivity(ctx context.Context, id uuid.UUID, req *model.UpdateActivityRequest) (*model.ActivityResponse, error) {
	if err := validation.FailIfInvalid("charity activity", validation.TagErrors(req)); err != nil {
		return nil, err
	}
	if err := validator.ValidateUpdateActivity(req); err != nil {
		return nil, err
	}

	activity, err := s.repo.GetActivityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		activity.Title = utils.SanitizeString(*req.Title)
	}
	if req.Description != nil {
		activity.Description = utils.SanitizeText(*req.Description)
	}
	if req.Date != nil && *req.Date != "" {
		d, err := validation.ParseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		activity.Date = d
	}
	if req.Location != nil {
		activity.Location = utils.SanitizeString(*req.Location)
	}
	if req.Organizer != nil {
		activity.Organizer = utils.SanitizeString(*req.Organizer)
	}
	if req.Participants != nil {
		activity.Participants = *req.Participants
	}
	if req.Budget != nil {
		activity.Budget = *req.Budget
	}
	if req.ActualCost != nil {
		activity.ActualCost = *req.ActualCost
	}
	activity.UpdatedAt = time.Now()

	if err := s.repo.UpdateActivity(ctx, activity); err != nil {
		return nil, err
	}

	return activity.ToResponse(), nil
}

func (s *charityService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteActivity(ctx, id); err != nil {
		return err
	}
	logger.Info("charity activity deleted", zap.String("activity_id", id.String()))
	return nil
}

func (s *charityService) SearchActivities(ctx context.Context, filter *model.ActivityFilterRequest) (*model.ActivityListResponse, error) {
	if err := validator.ValidateActivityFilter(filter); err != nil {
		return nil, err
	}

	activities, total, err := s.repo.SearchActivities(ctx, filter)
	if err != nil {
		return nil, err
	}

	page, pageSize := validation.NormalizePagination(filter.Page, filter.PageSize)

	out := make([]model.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, *activities[i].ToResponse())
	}

	return &model.ActivityListResponse{
		Activities: out,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

// ChangeActivityStatus moves an activity through its lifecycle. A
// same-status request succeeds without writing anything.
func (s *charityService) ChangeActivityStatus(ctx context.Context, id uuid.UUID, req *model.ChangeActivityStatusRequest) (*model.ActivityResponse, error) {
	if err := validation.FailIfInvalid("charity activity status", validation.TagErrors(req)); err != nil {
		return nil, err
	}

	activity, err := s.repo.GetActivityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := lifecycle.CharityActivities.ValidateStatusChange(string(activity.Status), req.Status)
	if !result.Valid {
		return nil, validation.FailIfInvalid("charity activity status", result.Errors)
	}

	newStatus, err := enums.CharityActivityStatusFromCode(req.Status)
	if err != nil {
		return nil, err
	}

	if activity.Status == newStatus {
		return activity.ToResponse(), nil
	}

	previous := activity.Status
	activity.Status = newStatus
	activity.UpdatedAt = time.Now()

	if err := s.repo.UpdateActivity(ctx, activity); err != nil {
		return nil, err
	}

	logger.Info("charity activity status changed",
		zap.String("activity_id", id.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(newStatus)))

	return activity.ToResponse(), nil
}

func (s *charityService) Stats(ctx context.Context) (*model.CharityStats, error) {
	return s.repo.Stats(ctx)
}
