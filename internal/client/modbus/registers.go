package modbus

import (
	"fmt"
	"math"
)

type Access int

const (
	InputRegister Access = iota
	HoldingRegister
)

func (a Access) String() string {
	if a == InputRegister {
		return "input"
	}
	return "holding"
}

// Register describes one XY-MD01 register. Physical value = raw / Scale.
type Register struct {
	Name    string
	Address uint16
	Access  Access
	Signed  bool
	Scale   float64
	Unit    string
}

var (
	Temperature    = Register{Name: "temperature", Address: 0x0001, Access: InputRegister, Signed: true, Scale: 10, Unit: "°C"}
	Humidity       = Register{Name: "humidity", Address: 0x0002, Access: InputRegister, Scale: 10, Unit: "%"}
	DeviceAddress  = Register{Name: "device_address", Address: 0x0101, Access: HoldingRegister, Scale: 1}
	BaudRate       = Register{Name: "baud_rate", Address: 0x0102, Access: HoldingRegister, Scale: 1}
	TempCorrection = Register{Name: "temp_correction", Address: 0x0103, Access: HoldingRegister, Signed: true, Scale: 10, Unit: "°C"}
	HumCorrection  = Register{Name: "hum_correction", Address: 0x0104, Access: HoldingRegister, Signed: true, Scale: 10, Unit: "%"}
)

// RegisterMap is the device register table in address order.
var RegisterMap = []Register{Temperature, Humidity, DeviceAddress, BaudRate, TempCorrection, HumCorrection}

const (
	MinSlaveID = 1
	MaxSlaveID = 247

	// CorrectionLimit bounds both calibration offsets, in physical units.
	CorrectionLimit = 10.0
)

// BaudRates maps the baud_rate register index to the line speed.
var BaudRates = map[int]int{
	0: 9600,
	1: 14400,
	2: 19200,
}

// BaudIndex returns the register index for a line speed.
func BaudIndex(rate int) (int, bool) {
	for i, r := range BaudRates {
		if r == rate {
			return i, true
		}
	}
	return 0, false
}

// Decode converts a raw 16-bit word to its physical value.
func (r Register) Decode(raw uint16) float64 {
	if r.Signed {
		return float64(int16(raw)) / r.Scale
	}
	return float64(raw) / r.Scale
}

// Encode converts a physical value to the raw word written to the device.
func (r Register) Encode(v float64) (uint16, error) {
	scaled := math.Round(v * r.Scale)
	if r.Signed {
		if scaled < math.MinInt16 || scaled > math.MaxInt16 {
			return 0, fmt.Errorf("%s: %v does not fit a signed register", r.Name, v)
		}
		return uint16(int16(scaled)), nil
	}
	if scaled < 0 || scaled > math.MaxUint16 {
		return 0, fmt.Errorf("%s: %v does not fit an unsigned register", r.Name, v)
	}
	return uint16(scaled), nil
}

// word returns the i-th big-endian register of a response.
func word(res []byte, i int) uint16 {
	return uint16(res[2*i])<<8 | uint16(res[2*i+1])
}
