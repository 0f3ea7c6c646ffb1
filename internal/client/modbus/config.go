package modbus

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type EnvCfg struct {
	DeviceID string
	Model    string
	Area     string

	Port      string
	Baud      int
	DataBits  int
	Parity    string // "N","E","O"
	StopBits  int
	SlaveID   int
	TimeoutMs int
	Debug     bool

	IntervalSec int
}

func LoadEnvCfg() (EnvCfg, error) {
	var c EnvCfg
	var err error

	c.Port = getEnvDefault("MODBUS_PORT", "/dev/ttyUSB0")
	c.Parity = strings.ToUpper(getEnvDefault("MODBUS_PARITY", "N"))
	if c.Baud, err = atoiEnv("MODBUS_BAUD", "9600"); err != nil {
		return c, err
	}
	if c.DataBits, err = atoiEnv("MODBUS_DATABITS", "8"); err != nil {
		return c, err
	}
	if c.StopBits, err = atoiEnv("MODBUS_STOPBITS", "1"); err != nil {
		return c, err
	}
	if c.SlaveID, err = atoiEnv("MODBUS_SLAVE_ID", "1"); err != nil {
		return c, err
	}
	if c.TimeoutMs, err = atoiEnv("MODBUS_TIMEOUT_MS", "1000"); err != nil {
		return c, err
	}
	if c.IntervalSec, err = atoiEnv("INTERVAL_SEC", "10"); err != nil {
		return c, err
	}
	if v := os.Getenv("MODBUS_DEBUG"); v != "" {
		if c.Debug, err = strconv.ParseBool(v); err != nil {
			return c, fmt.Errorf("invalid MODBUS_DEBUG %q: %w", v, err)
		}
	}

	c.DeviceID = getEnvDefault("DEVICE_ID", "xymd01")
	c.Model = getEnvDefault("MODEL", "XY-MD01")
	c.Area = getEnvDefault("AREA", "lab")

	return c, c.Validate()
}

func (c EnvCfg) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("missing MODBUS_PORT")
	}
	if c.SlaveID < MinSlaveID || c.SlaveID > MaxSlaveID {
		return fmt.Errorf("MODBUS_SLAVE_ID %d out of range %d-%d", c.SlaveID, MinSlaveID, MaxSlaveID)
	}
	if _, ok := BaudIndex(c.Baud); !ok {
		return fmt.Errorf("MODBUS_BAUD %d not supported by the device", c.Baud)
	}
	switch c.Parity {
	case "N", "E", "O":
	default:
		return fmt.Errorf("MODBUS_PARITY must be N, E or O, got %q", c.Parity)
	}
	if c.TimeoutMs <= 0 {
		return fmt.Errorf("MODBUS_TIMEOUT_MS must be positive")
	}
	if c.IntervalSec <= 0 {
		return fmt.Errorf("INTERVAL_SEC must be positive")
	}
	return nil
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiEnv(key, def string) (int, error) {
	v := getEnvDefault(key, def)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
