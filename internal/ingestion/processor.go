package ingestion

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	devicemodel "robot-rental-admin/internal/device/model"
	"robot-rental-admin/internal/logger"
)

// TelemetrySink is the slice of the device service the processor needs.
type TelemetrySink interface {
	ApplyTelemetry(ctx context.Context, update *devicemodel.TelemetryUpdate) error
}

// AlertPublisher pushes low-battery alerts back onto the broker for
// operations dashboards to pick up.
type AlertPublisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

const (
	applyTimeout = 10 * time.Second

	// lowBatteryAlertLevel mirrors the urgent-maintenance threshold.
	lowBatteryAlertLevel = 10

	alertTopicPrefix = "alerts/devices/"
)

type batteryAlert struct {
	SerialNumber string    `json:"serial_number"`
	BatteryLevel int       `json:"battery_level"`
	ReportedAt   time.Time `json:"reported_at"`
}

// Processor applies validated telemetry messages to the device records.
type Processor struct {
	devices TelemetrySink
	alerts  AlertPublisher
}

func NewProcessor(devices TelemetrySink) *Processor {
	return &Processor{devices: devices}
}

// SetAlertPublisher enables low-battery alert publishing. It must be
// called before the processor starts receiving messages.
func (p *Processor) SetAlertPublisher(alerts AlertPublisher) {
	p.alerts = alerts
}

// Process handles one raw MQTT message. Bad payloads and unknown devices
// are logged and dropped; the subscription stays alive.
func (p *Processor) Process(topic string, payload []byte) {
	msg, err := ParseTelemetry(topic, payload)
	if err != nil {
		logger.Warn("dropping telemetry message",
			zap.String("topic", topic), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	err = p.devices.ApplyTelemetry(ctx, &devicemodel.TelemetryUpdate{
		SerialNumber:    msg.SerialNumber,
		BatteryLevel:    msg.BatteryLevel,
		FirmwareVersion: msg.FirmwareVersion,
	})
	if err != nil {
		logger.Warn("failed to apply telemetry",
			zap.String("serial_number", msg.SerialNumber), zap.Error(err))
		return
	}

	logger.Debug("telemetry applied",
		zap.String("serial_number", msg.SerialNumber),
		zap.Int("battery_level", msg.BatteryLevel))

	if msg.BatteryLevel < lowBatteryAlertLevel {
		p.publishAlert(msg)
	}
}

func (p *Processor) publishAlert(msg *Telemetry) {
	if p.alerts == nil {
		return
	}

	payload, err := json.Marshal(batteryAlert{
		SerialNumber: msg.SerialNumber,
		BatteryLevel: msg.BatteryLevel,
		ReportedAt:   time.Now(),
	})
	if err != nil {
		return
	}

	if err := p.alerts.Publish(alertTopicPrefix+msg.SerialNumber, 1, false, payload); err != nil {
		logger.Warn("failed to publish low battery alert",
			zap.String("serial_number", msg.SerialNumber), zap.Error(err))
		return
	}

	logger.Info("low battery alert published",
		zap.String("serial_number", msg.SerialNumber),
		zap.Int("battery_level", msg.BatteryLevel))
}
