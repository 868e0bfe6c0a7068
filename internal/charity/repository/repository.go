package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"robot-rental-admin/internal/charity/model"
	"robot-rental-admin/internal/enums"
	"robot-rental-admin/internal/validation"
	apperrors "robot-rental-admin/pkg/errors"
)

type CharityRepository interface {
	CreateInstitution(ctx context.Context, institution *model.CharityInstitution) error
	GetInstitutionByID(ctx context.Context, id uuid.UUID) (*model.CharityInstitution, error)
	UpdateInstitution(ctx context.Context, institution *model.CharityInstitution) error
	DeleteInstitution(ctx context.Context, id uuid.UUID) error
	SearchInstitutions(ctx context.Context, filter *model.InstitutionFilterRequest) ([]model.CharityInstitution, int64, error)

	CreateActivity(ctx context.Context, activity *model.CharityActivity) error
	GetActivityByID(ctx context.Context, id uuid.UUID) (*model.CharityActivity, error)
	UpdateActivity(ctx context.Context, activity *model.CharityActivity) error
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	SearchActivities(ctx context.Context, filter *model.ActivityFilterRequest) ([]model.CharityActivity, int64, error)

	Stats(ctx context.Context) (*model.CharityStats, error)
}

type charityRepository struct {
	db *gorm.DB
}

func NewCharityRepository(db *gorm.DB) CharityRepository {
	return &charityRepository{db: db}
}

func (r *charityRepository) CreateInstitution(ctx context.Context, institution *model.CharityInstitution) error {
	return r.db.WithContext(ctx).Create(institution).Error
}

func (r *charityRepository) GetInstitutionByID(ctx context.Context, id uuid.UUID) (*model.CharityInstitution, error) {
	var institution model.CharityInstitution
	if err := r.db.WithContext(ctx).First(&institution, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, err
	}
	return &institution, nil
}

func (r *charityRepository) UpdateInstitution(ctx context.Context, institution *model.CharityInstitution) error {
	return r.db.WithContext(ctx).Save(institution).Error
}

func (r *charityRepository) DeleteInstitution(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CharityInstitution{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrInstitutionNotFound
	}
	return nil
}

func (r *charityRepository) SearchInstitutions(ctx context.Context, filter *model.InstitutionFilterRequest) ([]model.CharityInstitution, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.CharityInstitution{})

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("name ILIKE ? OR location ILIKE ? OR contact_person ILIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := validation.NormalizePagination(filter.Page, filter.PageSize)

	var institutions []model.CharityInstitution
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&institutions).Error
	if err != nil {
		return nil, 0, err
	}

	return institutions, total, nil
}

func (r *charityRepository) CreateActivity(ctx context.Context, activity *model.CharityActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *charityRepository) GetActivityByID(ctx context.Context, id uuid.UUID) (*model.CharityActivity, error) {
	var activity model.CharityActivity
	if err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (r *charityRepository) UpdateActivity(ctx context.Context, activity *model.CharityActivity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *charityRepository) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CharityActivity{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrActivityNotFound
	}
	return nil
}

func (r *charityRepository) SearchActivities(ctx context.Context, filter *model.ActivityFilterRequest) ([]model.CharityActivity, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.CharityActivity{})

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("title ILIKE ? OR location ILIKE ? OR organizer ILIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StartDate != "" {
		if start, err := validation.ParseDate(filter.StartDate); err == nil {
			query = query.Where("date >= ?", start)
		}
	}
	if filter.EndDate != "" {
		if end, err := validation.ParseDate(filter.EndDate); err == nil {
			query = query.Where("date < ?", end.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := validation.NormalizePagination(filter.Page, filter.PageSize)

	var activities []model.CharityActivity
	err := query.
		Order("date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&activities).Error
	if err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

// Stats recomputes the program aggregates from the stored records.
func (r *charityRepository) Stats(ctx context.Context) (*model.CharityStats, error) {
	stats := &model.CharityStats{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.CharityInstitution{}).Count(&stats.TotalInstitutions).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.CharityInstitution{}).
		Where("status = ?", string(enums.InstitutionActive)).
		Count(&stats.ActiveInstitutions).Error; err != nil {
		return nil, err
	}

	type institutionSums struct {
		Students int64
		Devices  int64
	}
	var is institutionSums
	if err := db.Model(&model.CharityInstitution{}).
		Select("COALESCE(SUM(student_count), 0) as students, COALESCE(SUM(device_count), 0) as devices").
		Scan(&is).Error; err != nil {
		return nil, err
	}
	stats.TotalStudents = is.Students
	stats.TotalDevicesPlaced = is.Devices

	if err := db.Model(&model.CharityActivity{}).Count(&stats.TotalActivities).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.CharityActivity{}).
		Where("status = ?", string(enums.ActivityOngoing)).
		Count(&stats.OngoingActivities).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.CharityActivity{}).
		Where("status = ?", string(enums.ActivityCompleted)).
		Count(&stats.CompletedActivities).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := db.Model(&model.CharityActivity{}).
		Where("date >= ?", monthStart).
		Count(&stats.ThisMonthActivities).Error; err != nil {
		return nil, err
	}

	type activitySums struct {
		Participants int64
		Budget       int64
		ActualCost   int64
	}
	var as activitySums
	if err := db.Model(&model.CharityActivity{}).
		Select("COALESCE(SUM(participants), 0) as participants, COALESCE(SUM(budget), 0) as budget, COALESCE(SUM(actual_cost), 0) as actual_cost").
		Scan(&as).Error; err != nil {
		return nil, err
	}
	stats.TotalParticipants = as.Participants
	stats.TotalBudget = as.Budget
	stats.TotalActualCost = as.ActualCost

	return stats, nil
}
