package modbus

import "testing"

func TestLoadEnvCfgDefaults(t *testing.T) {
	for _, k := range []string{"MODBUS_PORT", "MODBUS_BAUD", "MODBUS_DATABITS", "MODBUS_PARITY",
		"MODBUS_STOPBITS", "MODBUS_SLAVE_ID", "MODBUS_TIMEOUT_MS", "MODBUS_DEBUG", "INTERVAL_SEC"} {
		t.Setenv(k, "")
	}
	cfg, err := LoadEnvCfg()
	if err != nil {
		t.Fatalf("LoadEnvCfg: %v", err)
	}
	if cfg.Port != "/dev/ttyUSB0" || cfg.Baud != 9600 || cfg.DataBits != 8 ||
		cfg.Parity != "N" || cfg.StopBits != 1 || cfg.SlaveID != 1 || cfg.TimeoutMs != 1000 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Debug {
		t.Fatal("debug should default to false")
	}
}

func TestLoadEnvCfgOverrides(t *testing.T) {
	t.Setenv("MODBUS_PORT", "COM3")
	t.Setenv("MODBUS_BAUD", "19200")
	t.Setenv("MODBUS_PARITY", "e")
	t.Setenv("MODBUS_SLAVE_ID", "17")
	t.Setenv("MODBUS_DEBUG", "true")
	cfg, err := LoadEnvCfg()
	if err != nil {
		t.Fatalf("LoadEnvCfg: %v", err)
	}
	if cfg.Port != "COM3" || cfg.Baud != 19200 || cfg.Parity != "E" || cfg.SlaveID != 17 || !cfg.Debug {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadEnvCfgErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MODBUS_SLAVE_ID", "0"},
		{"MODBUS_SLAVE_ID", "248"},
		{"MODBUS_SLAVE_ID", "abc"},
		{"MODBUS_BAUD", "115200"},
		{"MODBUS_PARITY", "X"},
		{"MODBUS_TIMEOUT_MS", "-1"},
		{"MODBUS_DEBUG", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadEnvCfg(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
