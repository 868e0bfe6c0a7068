package model

import (
	"time"

	"github.com/google/uuid"

	"robot-rental-admin/internal/enums"
)

// AllowedModels is the closed set of robot models the fleet carries.
var AllowedModels = []string{"YX-EDU-2024", "YX-HOME-2024", "YX-PRO-2024"}

type Device struct {
	ID                uuid.UUID               `json:"id" gorm:"type:uuid;primaryKey"`
	SerialNumber      string                  `json:"serial_number" gorm:"uniqueIndex"`
	Model             string                  `json:"model"`
	Name              string                  `json:"name"`
	Status            enums.DeviceStatus      `json:"status"`
	MaintenanceStatus enums.MaintenanceStatus `json:"maintenance_status"`
	DailyRentalPrice  int64                   `json:"daily_rental_price"`
	BatteryLevel      int                     `json:"battery_level"`
	FirmwareVersion   string                  `json:"firmware_version"`
	LastSeenAt        *time.Time              `json:"last_seen_at"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

func (Device) TableName() string {
	return "devices"
}
