package model

import (
	"time"

	"github.com/google/uuid"
)

type DeviceResponse struct {
	ID                     uuid.UUID  `json:"id"`
	SerialNumber           string     `json:"serial_number"`
	Model                  string     `json:"model"`
	Name                   string     `json:"name"`
	Status                 string     `json:"status"`
	StatusLabel            string     `json:"status_label"`
	MaintenanceStatus      string     `json:"maintenance_status"`
	MaintenanceStatusLabel string     `json:"maintenance_status_label"`
	DailyRentalPrice       int64      `json:"daily_rental_price"`
	BatteryLevel           int        `json:"battery_level"`
	FirmwareVersion        string     `json:"firmware_version"`
	LastSeenAt             *time.Time `json:"last_seen_at"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

type DeviceListResponse struct {
	Devices    []DeviceResponse `json:"devices"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// BatchResult reports the per-ID outcome of a batch operation. A batch is
// not transactional: some IDs may succeed while others fail.
type BatchResult struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed"`
}

func (d *Device) ToResponse() *DeviceResponse {
	return &DeviceResponse{
		ID:                     d.ID,
		SerialNumber:           d.SerialNumber,
		Model:                  d.Model,
		Name:                   d.Name,
		Status:                 string(d.Status),
		StatusLabel:            d.Status.Label(),
		MaintenanceStatus:      string(d.MaintenanceStatus),
		MaintenanceStatusLabel: d.MaintenanceStatus.Label(),
		DailyRentalPrice:       d.DailyRentalPrice,
		BatteryLevel:           d.BatteryLevel,
		FirmwareVersion:        d.FirmwareVersion,
		LastSeenAt:             d.LastSeenAt,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
}
