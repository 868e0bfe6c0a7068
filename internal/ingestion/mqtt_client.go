package ingestion

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"robot-rental-admin/internal/logger"
	pkgmqtt "robot-rental-admin/pkg/mqtt"
)

// MQTTIngestionConfig describes the telemetry topic and MQTT connection
// parameters.
type MQTTIngestionConfig struct {
	ClientConfig   *pkgmqtt.Config
	TelemetryTopic string
	QoS            byte
}

// MQTTIngestionClient wires MQTT messages into the telemetry processor.
type MQTTIngestionClient struct {
	cfg       *MQTTIngestionConfig
	client    *pkgmqtt.Client
	processor *Processor

	mu            sync.Mutex
	started       bool
	subscriptions []string
}

func NewMQTTIngestionClient(cfg *MQTTIngestionConfig, processor *Processor) (*MQTTIngestionClient, error) {
	if cfg == nil || cfg.ClientConfig == nil {
		return nil, errors.New("mqtt ingestion config is not configured")
	}
	if cfg.TelemetryTopic == "" {
		return nil, errors.New("telemetry topic is required")
	}
	if processor == nil {
		return nil, errors.New("processor is required")
	}

	return &MQTTIngestionClient{
		cfg:       cfg,
		client:    pkgmqtt.NewClient(cfg.ClientConfig),
		processor: processor,
	}, nil
}

// Start establishes the MQTT connection and subscribes to the telemetry
// topic. It is idempotent.
func (c *MQTTIngestionClient) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	if err := c.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	// Alerts go out through the same connection the telemetry comes in on.
	c.processor.SetAlertPublisher(c.client)

	if err := c.client.Subscribe(c.cfg.TelemetryTopic, c.cfg.QoS, c.processor.Process); err != nil {
		c.client.Disconnect()
		return fmt.Errorf("subscribe failed for topic %s: %w", c.cfg.TelemetryTopic, err)
	}
	c.subscriptions = append(c.subscriptions, c.cfg.TelemetryTopic)

	logger.Info("listening for device telemetry",
		zap.String("topic", c.cfg.TelemetryTopic))

	c.started = true
	return nil
}

// Stop unsubscribes and disconnects from the broker.
func (c *MQTTIngestionClient) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}

	if c.client.IsConnected() {
		if len(c.subscriptions) > 0 {
			if err := c.client.Unsubscribe(c.subscriptions...); err != nil {
				logger.Warn("failed to unsubscribe from mqtt topics", zap.Error(err))
			}
		}
		c.client.Disconnect()
	}

	c.started = false
	c.subscriptions = nil
}
