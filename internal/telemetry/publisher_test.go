package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	modbusIface "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/modbus"
	modbusMock "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/modbus/mock"
	mqttIface "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/mqtt"
	mqttMock "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/mqtt/mock"
)

var testCfg = Config{DeviceID: "XY-MD01 shed", Model: "XY-MD01", Area: "garden"}

func recordPublishes(client *mqttMock.MockClient) *[]mqttIface.Message {
	var msgs []mqttIface.Message
	client.EXPECT().PublishEvent(gomock.Any()).DoAndReturn(func(m mqttIface.Message) error {
		msgs = append(msgs, m)
		return nil
	}).AnyTimes()
	return &msgs
}

func TestPublishOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	sensor := modbusMock.NewMockSensor(ctrl)
	client := mqttMock.NewMockClient(ctrl)
	msgs := recordPublishes(client)

	sensor.EXPECT().ReadMeasurements().Return(modbusIface.Measurement{Temperature: 23.7, Humidity: 45.5}, nil)

	p := NewPublisher(sensor, client, testCfg)
	if err := p.PublishOnce(1700000000); err != nil {
		t.Fatalf("PublishOnce: %v", err)
	}
	if len(*msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(*msgs))
	}
	m := (*msgs)[0]
	if m.Topic != "smh/XY-MD01 shed/state" || m.QoS != 1 || m.Retain {
		t.Fatalf("unexpected message %+v", m)
	}
	var got State
	if err := json.Unmarshal(m.Payload, &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	want := State{Ts: 1700000000, Temperature: 23.7, Humidity: 45.5}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPublishOnceReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sensor := modbusMock.NewMockSensor(ctrl)
	client := mqttMock.NewMockClient(ctrl)

	sensor.EXPECT().ReadMeasurements().Return(modbusIface.Measurement{}, errors.New("serial: timeout"))

	p := NewPublisher(sensor, client, testCfg)
	if err := p.PublishOnce(1); err == nil {
		t.Fatal("expected read error")
	}
}

func TestAnnounce(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mqttMock.NewMockClient(ctrl)
	msgs := recordPublishes(client)

	p := NewPublisher(modbusMock.NewMockSensor(ctrl), client, testCfg)
	if err := p.Announce(); err != nil {
		t.Fatalf("Announce: %v", err)
	}
	wantTopics := []string{
		"homeassistant/sensor/xy_md01_shed/temperature/config",
		"homeassistant/sensor/xy_md01_shed/humidity/config",
		"smh/XY-MD01 shed/availability",
	}
	if len(*msgs) != len(wantTopics) {
		t.Fatalf("expected %d messages, got %d", len(wantTopics), len(*msgs))
	}
	for i, m := range *msgs {
		if m.Topic != wantTopics[i] || !m.Retain {
			t.Errorf("message %d: topic %q retain %v", i, m.Topic, m.Retain)
		}
	}

	var disc map[string]interface{}
	if err := json.Unmarshal((*msgs)[1].Payload, &disc); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if disc["device_class"] != "humidity" || disc["unit_of_measurement"] != "%" ||
		disc["value_template"] != "{{ value_json.humidity }}" ||
		disc["suggested_display_precision"] != float64(1) {
		t.Fatalf("unexpected discovery payload %v", disc)
	}
	if string((*msgs)[2].Payload) != "online" {
		t.Fatalf("availability payload %q", (*msgs)[2].Payload)
	}
}

func TestAnnouncePublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mqttMock.NewMockClient(ctrl)
	client.EXPECT().PublishEvent(gomock.Any()).Return(errors.New("not connected"))

	p := NewPublisher(modbusMock.NewMockSensor(ctrl), client, testCfg)
	if err := p.Announce(); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	sensor := modbusMock.NewMockSensor(ctrl)
	client := mqttMock.NewMockClient(ctrl)
	msgs := recordPublishes(client)

	sensor.EXPECT().ReadMeasurements().Return(modbusIface.Measurement{Temperature: 20, Humidity: 50}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPublisher(sensor, client, testCfg)
	if err := p.Run(ctx, time.Hour); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(*msgs) != 5 {
		t.Fatalf("expected discovery, online, state and offline messages, got %d", len(*msgs))
	}
	last := (*msgs)[4]
	if last.Topic != "smh/XY-MD01 shed/availability" || string(last.Payload) != "offline" {
		t.Fatalf("unexpected last message %+v", last)
	}
}
