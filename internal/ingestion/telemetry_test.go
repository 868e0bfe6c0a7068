package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTelemetry(t *testing.T) {
	t.Run("payload with serial", func(t *testing.T) {
		msg, err := ParseTelemetry("devices/YX-2024-00017/telemetry",
			[]byte(`{"serial_number":"YX-2024-00017","battery_level":42}`))
		require.NoError(t, err)
		assert.Equal(t, "YX-2024-00017", msg.SerialNumber)
		assert.Equal(t, 42, msg.BatteryLevel)
	})

	t.Run("serial falls back to topic segment", func(t *testing.T) {
		msg, err := ParseTelemetry("devices/YX-2024-00017/telemetry",
			[]byte(`{"battery_level":42}`))
		require.NoError(t, err)
		assert.Equal(t, "YX-2024-00017", msg.SerialNumber)
	})

	t.Run("no serial anywhere fails", func(t *testing.T) {
		_, err := ParseTelemetry("some/other/topic/shape", []byte(`{"battery_level":42}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "serial number")
	})

	t.Run("battery out of range fails", func(t *testing.T) {
		_, err := ParseTelemetry("devices/YX-1/telemetry", []byte(`{"battery_level":150}`))
		require.Error(t, err)

		_, err = ParseTelemetry("devices/YX-1/telemetry", []byte(`{"battery_level":-1}`))
		require.Error(t, err)
	})

	t.Run("malformed json fails", func(t *testing.T) {
		_, err := ParseTelemetry("devices/YX-1/telemetry", []byte(`{`))
		require.Error(t, err)
	})
}
