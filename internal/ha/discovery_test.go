package ha

import (
	"encoding/json"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"xymd01", "xymd01"},
		{"XY-MD01", "xy_md01"},
		{"greenhouse/rack 2", "greenhouse_rack_2"},
		{"sensor.temp.1", "sensor_temp_1"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTopicSensorConfig(t *testing.T) {
	got := TopicSensorConfig("temperature", "xymd01")
	if got != "homeassistant/sensor/xymd01/temperature/config" {
		t.Fatalf("unexpected topic %q", got)
	}
}

func TestMarshalMergesExtra(t *testing.T) {
	cfg := &SensorConfig{
		Name:        "xymd01 temperature",
		UniqueID:    "xymd01_temperature",
		StateTopic:  "smh/xymd01/state",
		DeviceClass: "temperature",
		UnitOfMeas:  "°C",
		Extra:       map[string]interface{}{"suggested_display_precision": 1},
	}
	b, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if m["unit_of_measurement"] != "°C" || m["suggested_display_precision"] != float64(1) {
		t.Fatalf("unexpected payload %s", b)
	}
	if _, ok := m["device"]; ok {
		t.Fatal("nil device must be omitted")
	}
}
