package mqtt

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	mqttIface "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/mqtt"
)

const (
	PayloadOnline  = "online"
	PayloadOffline = "offline"
)

type mqttClient struct {
	mqttIface.API
}

type Config struct {
	BrokerURL string
	ClientID  string
	Username  string
	Password  string
	TLS       bool

	// WillTopic receives PayloadOffline when the connection drops.
	WillTopic string
}

func LoadConfigFromEnv() (Config, error) {
	var cfg Config

	cfg.BrokerURL = os.Getenv("MQTT_URL")
	if cfg.BrokerURL == "" {
		return cfg, errors.New("missing MQTT_URL")
	}
	cfg.ClientID = os.Getenv("MQTT_CLIENT_ID")
	if cfg.ClientID == "" {
		cfg.ClientID = "xymd01"
	}
	cfg.Username = os.Getenv("MQTT_USERNAME")
	cfg.Password = os.Getenv("MQTT_PASSWORD")

	if v := os.Getenv("MQTT_TLS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid MQTT_TLS %q: %w", v, err)
		}
		cfg.TLS = b
	}

	return cfg, nil
}

func clientOptions(cfg Config) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetKeepAlive(30 * time.Second).
		SetConnectTimeout(5 * time.Second).
		SetPingTimeout(3 * time.Second).
		SetAutoReconnect(true).
		SetOrderMatters(false)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	if cfg.TLS {
		opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: true})
	}
	if cfg.WillTopic != "" {
		opts.SetWill(cfg.WillTopic, PayloadOffline, 1, true)
	}
	return opts
}

func NewClient(cfg Config) (mqttIface.Client, error) {
	client := mqtt.NewClient(clientOptions(cfg))
	t := client.Connect()
	if ok := t.WaitTimeout(10 * time.Second); !ok {
		return nil, fmt.Errorf("mqtt connect %s: timeout", cfg.BrokerURL)
	}
	if err := t.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", cfg.BrokerURL, err)
	}
	return &mqttClient{API: client}, nil
}

func (c mqttClient) PublishEvent(message mqttIface.Message) error {
	t := c.API.Publish(message.Topic, message.QoS, message.Retain, message.Payload)
	t.Wait()
	return t.Error()
}

func (c mqttClient) Close(quiesce uint) error {
	if c.IsConnectionOpen() {
		c.Disconnect(quiesce)
	}
	return nil
}
