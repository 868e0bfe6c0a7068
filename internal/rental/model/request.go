package model

import (
	"time"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	DeviceID   string `json:"device_id" validate:"required,uuid"`
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Notes      string `json:"notes" validate:"omitempty,max=1000"`
}

type ChangeRentalStatusRequest struct {
	Status string `json:"status" validate:"required,rental_status"`
}

// RentalFilterRequest carries explicit pagination: out-of-range values are
// rejected at the boundary rather than silently normalized.
type RentalFilterRequest struct {
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	DeviceID   string `form:"device_id"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

type RentalResponse struct {
	ID          uuid.UUID  `json:"id"`
	DeviceID    uuid.UUID  `json:"device_id"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	Status      string     `json:"status"`
	StatusLabel string     `json:"status_label"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	ReturnedAt  *time.Time `json:"returned_at"`
	DailyRate   int64      `json:"daily_rate"`
	TotalFee    int64      `json:"total_fee"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type RentalListResponse struct {
	Rentals    []RentalResponse `json:"rentals"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

func (r *Rental) ToResponse() *RentalResponse {
	return &RentalResponse{
		ID:          r.ID,
		DeviceID:    r.DeviceID,
		CustomerID:  r.CustomerID,
		Status:      string(r.Status),
		StatusLabel: r.Status.Label(),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		ReturnedAt:  r.ReturnedAt,
		DailyRate:   r.DailyRate,
		TotalFee:    r.TotalFee(),
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
