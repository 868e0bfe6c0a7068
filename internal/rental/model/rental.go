package model

import (
	"time"

	"github.com/google/uuid"

	"robot-rental-admin/internal/enums"
)

type Rental struct {
	ID         uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	DeviceID   uuid.UUID          `json:"device_id" gorm:"type:uuid;index"`
	CustomerID uuid.UUID          `json:"customer_id" gorm:"type:uuid;index"`
	Status     enums.RentalStatus `json:"status"`
	StartDate  time.Time          `json:"start_date"`
	EndDate    time.Time          `json:"end_date"`
	ReturnedAt *time.Time         `json:"returned_at"`
	DailyRate  int64              `json:"daily_rate"`
	Notes      string             `json:"notes"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (Rental) TableName() string {
	return "rentals"
}

// TotalFee is the planned rental fee in cents: daily rate times the number
// of charged days. A rental always charges at least one day.
func (r *Rental) TotalFee() int64 {
	days := int64(r.EndDate.Sub(r.StartDate).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days * r.DailyRate
}
