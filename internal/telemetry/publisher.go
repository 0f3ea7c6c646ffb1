package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqttClient "github.com/mehdieshraghi/modbus-MD-sensor/internal/client/mqtt"
	"github.com/mehdieshraghi/modbus-MD-sensor/internal/ha"
	modbusIface "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/modbus"
	mqttIface "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/mqtt"
)

type Config struct {
	DeviceID string
	Model    string
	Area     string
}

type State struct {
	Ts          int64   `json:"ts"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

type Reader interface {
	ReadMeasurements() (modbusIface.Measurement, error)
}

// Publisher polls one sensor and publishes its readings over MQTT.
type Publisher struct {
	sensor Reader
	client mqttIface.Client
	cfg    Config
}

func NewPublisher(sensor Reader, client mqttIface.Client, cfg Config) *Publisher {
	return &Publisher{sensor: sensor, client: client, cfg: cfg}
}

func StateTopic(deviceID string) string {
	return "smh/" + deviceID + "/state"
}

func AvailabilityTopic(deviceID string) string {
	return "smh/" + deviceID + "/availability"
}

// Announce publishes retained Home Assistant discovery configs and marks the device online.
func (p *Publisher) Announce() error {
	unique := ha.Sanitize(p.cfg.DeviceID)
	device := &ha.Device{
		Identifiers:   []string{p.cfg.DeviceID},
		Manufacturer:  "SMH",
		Model:         p.cfg.Model,
		Name:          p.cfg.DeviceID,
		SuggestedArea: p.cfg.Area,
	}
	sensors := []struct {
		cap, class, unit string
	}{
		{"temperature", "temperature", "°C"},
		{"humidity", "humidity", "%"},
	}
	for _, s := range sensors {
		cfg := &ha.SensorConfig{
			Name:              fmt.Sprintf("%s %s", p.cfg.DeviceID, s.cap),
			UniqueID:          unique + "_" + s.cap,
			StateTopic:        StateTopic(p.cfg.DeviceID),
			ValueTpl:          fmt.Sprintf("{{ value_json.%s }}", s.cap),
			DeviceClass:       s.class,
			StateClass:        "measurement",
			UnitOfMeas:        s.unit,
			AvailabilityTopic: AvailabilityTopic(p.cfg.DeviceID),
			Device:            device,
			Extra:             map[string]interface{}{"suggested_display_precision": 1},
		}
		b, err := cfg.Marshal()
		if err != nil {
			return fmt.Errorf("marshal %s discovery: %w", s.cap, err)
		}
		if err := p.client.PublishEvent(mqttIface.Message{
			Topic:   ha.TopicSensorConfig(s.cap, unique),
			Payload: b,
			QoS:     1,
			Retain:  true,
		}); err != nil {
			return fmt.Errorf("publish %s discovery: %w", s.cap, err)
		}
	}
	return p.setAvailability(mqttClient.PayloadOnline)
}

// PublishOnce reads the sensor and publishes a single state message.
func (p *Publisher) PublishOnce(now int64) error {
	m, err := p.sensor.ReadMeasurements()
	if err != nil {
		return err
	}
	data, err := json.Marshal(State{Ts: now, Temperature: m.Temperature, Humidity: m.Humidity})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	return p.client.PublishEvent(mqttIface.Message{
		Topic:   StateTopic(p.cfg.DeviceID),
		Payload: data,
		QoS:     1,
		Retain:  false,
	})
}

// Run announces the device and publishes a reading every interval until ctx is done.
func (p *Publisher) Run(ctx context.Context, interval time.Duration) error {
	if err := p.Announce(); err != nil {
		return err
	}
	defer func() {
		if err := p.setAvailability(mqttClient.PayloadOffline); err != nil {
			log.Printf("publish offline: %v", err)
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := p.PublishOnce(time.Now().Unix()); err != nil {
			log.Printf("publish state: %v", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (p *Publisher) setAvailability(payload string) error {
	return p.client.PublishEvent(mqttIface.Message{
		Topic:   AvailabilityTopic(p.cfg.DeviceID),
		Payload: []byte(payload),
		QoS:     1,
		Retain:  true,
	})
}
