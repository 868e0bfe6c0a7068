package model

import (
	"time"

	"github.com/google/uuid"
)

type InstitutionResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	TypeLabel       string     `json:"type_label"`
	Location        string     `json:"location"`
	ContactPerson   string     `json:"contact_person"`
	ContactPhone    string     `json:"contact_phone"`
	Email           string     `json:"email"`
	Status          string     `json:"status"`
	StatusLabel     string     `json:"status_label"`
	StudentCount    int        `json:"student_count"`
	DeviceCount     int        `json:"device_count"`
	CooperationDate *time.Time `json:"cooperation_date"`
	LastVisitDate   *time.Time `json:"last_visit_date"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ActivityResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Type          string     `json:"type"`
	TypeLabel     string     `json:"type_label"`
	Date          time.Time  `json:"date"`
	Location      string     `json:"location"`
	Organizer     string     `json:"organizer"`
	Status        string     `json:"status"`
	StatusLabel   string     `json:"status_label"`
	Participants  int        `json:"participants"`
	Budget        int64      `json:"budget"`
	ActualCost    int64      `json:"actual_cost"`
	InstitutionID *uuid.UUID `json:"institution_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

type InstitutionListResponse struct {
	Institutions []InstitutionResponse `json:"institutions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	TotalPages   int                   `json:"total_pages"`
}

// CharityStats is the dashboard aggregate over the charity program. All
// counters are recomputed from the stored records, never edited directly,
// so the consistency rules (active <= total, this month <= total) hold by
// construction.
type CharityStats struct {
	TotalInstitutions  int64 `json:"total_institutions"`
	ActiveInstitutions int64 `json:"active_institutions"`
	TotalStudents      int64 `json:"total_students"`
	TotalDevicesPlaced int64 `json:"total_devices_placed"`

	TotalActivities     int64 `json:"total_activities"`
	OngoingActivities   int64 `json:"ongoing_activities"`
	CompletedActivities int64 `json:"completed_activities"`
	ThisMonthActivities int64 `json:"this_month_activities"`

	TotalParticipants int64 `json:"total_participants"`
	TotalBudget       int64 `json:"total_budget"`
	TotalActualCost   int64 `json:"total_actual_cost"`
}

func (i *CharityInstitution) ToResponse() *InstitutionResponse {
	return &InstitutionResponse{
		ID:              i.ID,
		Name:            i.Name,
		Type:            string(i.Type),
		TypeLabel:       i.Type.Label(),
		Location:        i.Location,
		ContactPerson:   i.ContactPerson,
		ContactPhone:    i.ContactPhone,
		Email:           i.Email,
		Status:          string(i.Status),
		StatusLabel:     i.Status.Label(),
		StudentCount:    i.StudentCount,
		DeviceCount:     i.DeviceCount,
		CooperationDate: i.CooperationDate,
		LastVisitDate:   i.LastVisitDate,
		Notes:           i.Notes,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

func (a *CharityActivity) ToResponse() *ActivityResponse {
	return &ActivityResponse{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		Type:          string(a.Type),
		TypeLabel:     a.Type.Label(),
		Date:          a.Date,
		Location:      a.Location,
		Organizer:     a.Organizer,
		Status:        string(a.Status),
		StatusLabel:   a.Status.Label(),
		Participants:  a.Participants,
		Budget:        a.Budget,
		ActualCost:    a.ActualCost,
		InstitutionID: a.InstitutionID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
