//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	modbusClient "github.com/mehdieshraghi/modbus-MD-sensor/internal/client/modbus"
	mqttClient "github.com/mehdieshraghi/modbus-MD-sensor/internal/client/mqtt"
	modbusIface "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/modbus"
	mqttIface "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/mqtt"
	"github.com/mehdieshraghi/modbus-MD-sensor/internal/telemetry"
)

type MainHandler struct {
	Sensor     modbusIface.Sensor
	MQTTClient mqttIface.Client
	Publisher  *telemetry.Publisher
	Cfg        modbusClient.EnvCfg
}

func NewMainHandler(
	sensor modbusIface.Sensor,
	mqttClient mqttIface.Client,
	publisher *telemetry.Publisher,
	cfg modbusClient.EnvCfg,
) *MainHandler {
	return &MainHandler{
		Sensor:     sensor,
		MQTTClient: mqttClient,
		Publisher:  publisher,
		Cfg:        cfg,
	}
}

func InitSensor(cfg modbusClient.EnvCfg) (modbusIface.Sensor, error) {
	wire.Build(ProvideSensor)
	return nil, nil // wire will generate the result
}

func InitMonitor(cfg modbusClient.EnvCfg) (*MainHandler, error) {
	wire.Build(
		NewMainHandler,
		ProvideSensor,
		ProvideMqttConfig,
		ProvideMqttClient,
		ProvideTelemetryConfig,
		ProvidePublisher,
	)
	return nil, nil // wire will generate the result
}

func ProvideSensor(cfg modbusClient.EnvCfg) (modbusIface.Sensor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return modbusClient.NewSession(cfg), nil
}

func ProvideMqttConfig(cfg modbusClient.EnvCfg) (mqttClient.Config, error) {
	c, err := mqttClient.LoadConfigFromEnv()
	if err != nil {
		return c, err
	}
	c.WillTopic = telemetry.AvailabilityTopic(cfg.DeviceID)
	return c, nil
}

func ProvideMqttClient(cfg mqttClient.Config) (mqttIface.Client, error) {
	return mqttClient.NewClient(cfg)
}

func ProvideTelemetryConfig(cfg modbusClient.EnvCfg) telemetry.Config {
	return telemetry.Config{DeviceID: cfg.DeviceID, Model: cfg.Model, Area: cfg.Area}
}

func ProvidePublisher(sensor modbusIface.Sensor, client mqttIface.Client, cfg telemetry.Config) *telemetry.Publisher {
	return telemetry.NewPublisher(sensor, client, cfg)
}
