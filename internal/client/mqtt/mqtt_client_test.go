package mqtt

import (
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/mock/gomock"
	mqttIface "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/mqtt"
	"github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/mqtt/mock"
)

// doneToken is an already completed mqtt.Token.
type doneToken struct {
	err error
}

func (t doneToken) Wait() bool { return true }

func (t doneToken) WaitTimeout(_ time.Duration) bool { return true }

func (t doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (t doneToken) Error() error { return t.err }

var _ mqtt.Token = doneToken{}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MQTT_URL", "tcp://broker:1883")
	t.Setenv("MQTT_CLIENT_ID", "")
	t.Setenv("MQTT_TLS", "true")
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv: %v", err)
	}
	if cfg.BrokerURL != "tcp://broker:1883" || cfg.ClientID != "xymd01" || !cfg.TLS {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigFromEnvErrors(t *testing.T) {
	t.Setenv("MQTT_URL", "")
	if _, err := LoadConfigFromEnv(); err == nil {
		t.Fatal("expected error without MQTT_URL")
	}
	t.Setenv("MQTT_URL", "tcp://broker:1883")
	t.Setenv("MQTT_TLS", "sometimes")
	if _, err := LoadConfigFromEnv(); err == nil {
		t.Fatal("expected error for bad MQTT_TLS")
	}
}

func TestClientOptionsWill(t *testing.T) {
	opts := clientOptions(Config{BrokerURL: "tcp://broker:1883", ClientID: "x", WillTopic: "smh/x/availability"})
	if !opts.WillEnabled || opts.WillTopic != "smh/x/availability" || string(opts.WillPayload) != PayloadOffline || !opts.WillRetained {
		t.Fatalf("will not configured: %+v", opts)
	}
}

func TestPublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockClient(ctrl)
	c := mqttClient{API: api}

	payload := []byte(`{"temperature":23.7}`)
	api.EXPECT().Publish("smh/xymd01/state", byte(1), false, payload).Return(doneToken{})
	if err := c.PublishEvent(mqttIface.Message{Topic: "smh/xymd01/state", Payload: payload, QoS: 1}); err != nil {
		t.Fatalf("PublishEvent: %v", err)
	}

	api.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(doneToken{err: errors.New("not connected")})
	if err := c.PublishEvent(mqttIface.Message{Topic: "t"}); err == nil {
		t.Fatal("expected publish error")
	}
}

func TestClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockClient(ctrl)
	c := mqttClient{API: api}

	api.EXPECT().IsConnectionOpen().Return(true)
	api.EXPECT().Disconnect(uint(250))
	if err := c.Close(250); err != nil {
		t.Fatalf("Close: %v", err)
	}

	api.EXPECT().IsConnectionOpen().Return(false)
	if err := c.Close(250); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
