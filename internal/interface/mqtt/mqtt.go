package mqtt

import mqtt "github.com/eclipse/paho.mqtt.golang"

// Message is one outbound publish.
type Message struct {
	Topic   string `json:"topic"`
	Payload []byte `json:"payload"`
	QoS     byte   `json:"qos"`
	Retain  bool   `json:"retain"`
}

// Client publishes telemetry for one device. It only sends; nothing subscribes.
type Client interface {
	API
	PublishEvent(message Message) error
	Close(quiesce uint) error
}

type API interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
	IsConnectionOpen() bool
}
