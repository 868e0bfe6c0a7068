package model

import (
	"time"

	"github.com/google/uuid"

	"robot-rental-admin/internal/enums"
)

// CharityInstitution is a partner organization receiving donated writing
// robots: a school, hospital, community center or similar.
type CharityInstitution struct {
	ID              uuid.UUID               `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string                  `json:"name"`
	Type            enums.InstitutionType   `json:"type"`
	Location        string                  `json:"location"`
	ContactPerson   string                  `json:"contact_person"`
	ContactPhone    string                  `json:"contact_phone"`
	Email           string                  `json:"email"`
	Status          enums.InstitutionStatus `json:"status"`
	StudentCount    int                     `json:"student_count"`
	DeviceCount     int                     `json:"device_count"`
	CooperationDate *time.Time              `json:"cooperation_date"`
	LastVisitDate   *time.Time              `json:"last_visit_date"`
	Notes           string                  `json:"notes"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func (CharityInstitution) TableName() string {
	return "charity_institutions"
}

// CharityActivity is one outreach event: a donation drive, a volunteer
// visit, a teaching session. Budget and actual cost are stored in cents.
type CharityActivity struct {
	ID            uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Title         string                      `json:"title"`
	Description   string                      `json:"description"`
	Type          enums.CharityActivityType   `json:"type"`
	Date          time.Time                   `json:"date"`
	Location      string                      `json:"location"`
	Organizer     string                      `json:"organizer"`
	Status        enums.CharityActivityStatus `json:"status"`
	Participants  int                         `json:"participants"`
	Budget        int64                       `json:"budget"`
	ActualCost    int64                       `json:"actual_cost"`
	InstitutionID *uuid.UUID                  `json:"institution_id" gorm:"type:uuid"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func (CharityActivity) TableName() string {
	return "charity_activities"
}
