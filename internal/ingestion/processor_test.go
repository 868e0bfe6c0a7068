package ingestion

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	devicemodel "robot-rental-admin/internal/device/model"
)

type fakeSink struct {
	updates []*devicemodel.TelemetryUpdate
	err     error
}

func (f *fakeSink) ApplyTelemetry(_ context.Context, update *devicemodel.TelemetryUpdate) error {
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, update)
	return nil
}

type fakePublisher struct {
	topics   []string
	payloads [][]byte
}

func (f *fakePublisher) Publish(topic string, _ byte, _ bool, payload []byte) error {
	f.topics = append(f.topics, topic)
	f.payloads = append(f.payloads, payload)
	return nil
}

func TestProcess(t *testing.T) {
	t.Run("applies telemetry to the sink", func(t *testing.T) {
		sink := &fakeSink{}
		p := NewProcessor(sink)

		p.Process("devices/YX-2024-00017/telemetry",
			[]byte(`{"battery_level":42}`))

		require.Len(t, sink.updates, 1)
		assert.Equal(t, "YX-2024-00017", sink.updates[0].SerialNumber)
		assert.Equal(t, 42, sink.updates[0].BatteryLevel)
	})

	t.Run("bad payload is dropped", func(t *testing.T) {
		sink := &fakeSink{}
		p := NewProcessor(sink)

		p.Process("devices/YX-1/telemetry", []byte(`{`))
		assert.Empty(t, sink.updates)
	})

	t.Run("low battery publishes an alert", func(t *testing.T) {
		sink := &fakeSink{}
		pub := &fakePublisher{}
		p := NewProcessor(sink)
		p.SetAlertPublisher(pub)

		p.Process("devices/YX-2024-00017/telemetry",
			[]byte(`{"battery_level":5}`))

		require.Len(t, pub.topics, 1)
		assert.Equal(t, "alerts/devices/YX-2024-00017", pub.topics[0])

		var alert batteryAlert
		require.NoError(t, json.Unmarshal(pub.payloads[0], &alert))
		assert.Equal(t, "YX-2024-00017", alert.SerialNumber)
		assert.Equal(t, 5, alert.BatteryLevel)
	})

	t.Run("healthy battery publishes nothing", func(t *testing.T) {
		sink := &fakeSink{}
		pub := &fakePublisher{}
		p := NewProcessor(sink)
		p.SetAlertPublisher(pub)

		p.Process("devices/YX-1/telemetry", []byte(`{"battery_level":42}`))
		assert.Empty(t, pub.topics)
	})

	t.Run("no publisher configured is fine", func(t *testing.T) {
		sink := &fakeSink{}
		p := NewProcessor(sink)

		p.Process("devices/YX-1/telemetry", []byte(`{"battery_level":3}`))
		require.Len(t, sink.updates, 1)
	})

	t.Run("sink failure suppresses the alert", func(t *testing.T) {
		sink := &fakeSink{err: errors.New("unknown device")}
		pub := &fakePublisher{}
		p := NewProcessor(sink)
		p.SetAlertPublisher(pub)

		p.Process("devices/YX-1/telemetry", []byte(`{"battery_level":3}`))
		assert.Empty(t, pub.topics)
	})
}
