package modbus

import (
	"errors"
	"fmt"

	"github.com/goburrow/modbus"
)

var ErrNotConnected = errors.New("modbus: session is not connected")

// ValidationError is returned when an argument is rejected before any wire access.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// TransportError covers serial faults, timeouts, CRC failures and malformed frames.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError is a Modbus exception response from the device.
type ProtocolError struct {
	Op  string
	Err *modbus.ModbusError
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: device exception: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

func wireError(op string, err error) error {
	var mbErr *modbus.ModbusError
	if errors.As(err, &mbErr) {
		return &ProtocolError{Op: op, Err: mbErr}
	}
	return &TransportError{Op: op, Err: err}
}
