// Package ingestion consumes device telemetry from the MQTT broker and
// applies it to the fleet records.
package ingestion

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Telemetry is the wire format devices publish on
// devices/<serial>/telemetry.
type Telemetry struct {
	SerialNumber    string `json:"serial_number"`
	BatteryLevel    int    `json:"battery_level"`
	FirmwareVersion string `json:"firmware_version"`
}

// ParseTelemetry decodes and validates a telemetry message. When the
// payload omits the serial number it is taken from the topic segment.
func ParseTelemetry(topic string, payload []byte) (*Telemetry, error) {
	var msg Telemetry
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("malformed telemetry payload: %w", err)
	}

	if msg.SerialNumber == "" {
		msg.SerialNumber = serialFromTopic(topic)
	}
	if msg.SerialNumber == "" {
		return nil, errors.New("telemetry message has no serial number")
	}

	if msg.BatteryLevel < 0 || msg.BatteryLevel > 100 {
		return nil, fmt.Errorf("battery level %d out of range", msg.BatteryLevel)
	}

	return &msg, nil
}

// serialFromTopic extracts the serial from devices/<serial>/telemetry.
func serialFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) == 3 && parts[0] == "devices" && parts[2] == "telemetry" {
		return parts[1]
	}
	return ""
}
