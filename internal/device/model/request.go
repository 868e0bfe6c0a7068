package model

type CreateDeviceRequest struct {
	SerialNumber     string `json:"serial_number" validate:"required,max=64"`
	Model            string `json:"model" validate:"required"`
	Name             string `json:"name" validate:"required,max=200"`
	DailyRentalPrice int64  `json:"daily_rental_price" validate:"required,gt=0"`
	FirmwareVersion  string `json:"firmware_version" validate:"omitempty,max=32"`
}

type UpdateDeviceRequest struct {
	Name             *string `json:"name" validate:"omitempty,max=200"`
	DailyRentalPrice *int64  `json:"daily_rental_price" validate:"omitempty,gt=0"`
	FirmwareVersion  *string `json:"firmware_version" validate:"omitempty,max=32"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,device_status"`
}

type BatchOperationRequest struct {
	IDs       []string `json:"ids" validate:"required"`
	Operation string   `json:"operation" validate:"required"`
	// Status applies when Operation is "updateStatus".
	Status string `json:"status" validate:"omitempty,device_status"`
}

type DeviceFilterRequest struct {
	Keyword  string `form:"keyword"`
	Status   string `form:"status"`
	Model    string `form:"model"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// TelemetryUpdate carries the fields a device reports over MQTT.
type TelemetryUpdate struct {
	SerialNumber    string `json:"serial_number"`
	BatteryLevel    int    `json:"battery_level"`
	FirmwareVersion string `json:"firmware_version"`
}
