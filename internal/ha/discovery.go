package ha

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

type Device struct {
	Identifiers   []string `json:"identifiers,omitempty"`
	Manufacturer  string   `json:"manufacturer,omitempty"`
	Model         string   `json:"model,omitempty"`
	Name          string   `json:"name,omitempty"`
	SuggestedArea string   `json:"suggested_area,omitempty"`
}

type SensorConfig struct {
	Name              string                 `json:"name"`
	UniqueID          string                 `json:"unique_id"`
	StateTopic        string                 `json:"state_topic"`
	ValueTpl          string                 `json:"value_template,omitempty"`
	DeviceClass       string                 `json:"device_class,omitempty"`
	StateClass        string                 `json:"state_class,omitempty"`
	UnitOfMeas        string                 `json:"unit_of_measurement,omitempty"`
	AvailabilityTopic string                 `json:"availability_topic,omitempty"`
	Device            *Device                `json:"device,omitempty"`
	Extra             map[string]interface{} `json:"-"`
}

// Marshal encodes the config and merges Extra into the top-level object.
func (c *SensorConfig) Marshal() ([]byte, error) {
	type alias SensorConfig
	a := alias(*c)
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	if c.Extra != nil {
		var base map[string]interface{}
		if err := json.Unmarshal(b, &base); err != nil {
			return nil, err
		}
		for k, v := range c.Extra {
			base[k] = v
		}
		return json.Marshal(base)
	}
	return b, nil
}

func TopicSensorConfig(cap, unique string) string {
	return fmt.Sprintf("homeassistant/sensor/%s/%s/config", unique, cap)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// Sanitize turns a device id into a discovery-safe object id.
func Sanitize(s string) string {
	return strings.ToLower(unsafeChars.ReplaceAllString(s, "_"))
}
