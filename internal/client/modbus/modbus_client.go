package modbus

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/goburrow/modbus"
	modbusIface "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/modbus"
)

// Session owns the serial line to one XY-MD01 slave. Requests are issued
// one at a time; a Session must not be shared between goroutines.
type Session struct {
	api       modbusIface.API
	link      modbusIface.Link
	port      string
	slaveID   byte
	connected bool
}

var _ modbusIface.Sensor = (*Session)(nil)

type rtuLink struct {
	*modbus.RTUClientHandler
}

func (l rtuLink) SetSlaveID(id byte) { l.SlaveId = id }

// NewSession builds an RTU session from cfg. The line is opened by Connect.
func NewSession(cfg EnvCfg) *Session {
	rh := modbus.NewRTUClientHandler(cfg.Port)
	rh.BaudRate = cfg.Baud
	rh.DataBits = cfg.DataBits
	rh.Parity = cfg.Parity
	rh.StopBits = cfg.StopBits
	rh.SlaveId = byte(cfg.SlaveID)
	rh.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
	if cfg.Debug {
		rh.Logger = log.New(os.Stderr, "modbus: ", log.LstdFlags)
	}
	return newSession(modbus.NewClient(rh), rtuLink{rh}, cfg.Port, byte(cfg.SlaveID))
}

func newSession(api modbusIface.API, link modbusIface.Link, port string, slaveID byte) *Session {
	return &Session{
		api:     api,
		link:    link,
		port:    port,
		slaveID: slaveID,
	}
}

func (s *Session) Port() string { return s.port }
func (s *Session) SlaveID() byte { return s.slaveID }
func (s *Session) Connected() bool { return s.connected }

func (s *Session) Connect() error {
	if err := s.link.Connect(); err != nil {
		return s.fail(&TransportError{Op: "connect " + s.port, Err: err})
	}
	s.connected = true
	return nil
}

// Disconnect closes the line. It is a no-op on a closed session.
func (s *Session) Disconnect() error {
	if !s.connected {
		return nil
	}
	s.connected = false
	if err := s.link.Close(); err != nil {
		return s.fail(&TransportError{Op: "disconnect " + s.port, Err: err})
	}
	return nil
}

// ReadMeasurements reads temperature and humidity in a single request.
func (s *Session) ReadMeasurements() (modbusIface.Measurement, error) {
	const op = "read measurements"
	res, err := s.read(op, InputRegister, Temperature.Address, 2)
	if err != nil {
		return modbusIface.Measurement{}, err
	}
	return modbusIface.Measurement{
		Temperature: Temperature.Decode(word(res, 0)),
		Humidity:    Humidity.Decode(word(res, 1)),
	}, nil
}

// ReadSettings reads the four configuration holding registers.
func (s *Session) ReadSettings() (modbusIface.Settings, error) {
	const op = "read settings"
	res, err := s.read(op, HoldingRegister, DeviceAddress.Address, 4)
	if err != nil {
		return modbusIface.Settings{}, err
	}
	idx := int(word(res, 1))
	return modbusIface.Settings{
		Address:        int(word(res, 0)),
		BaudIndex:      idx,
		BaudRate:       BaudRates[idx],
		TempCorrection: TempCorrection.Decode(word(res, 2)),
		HumCorrection:  HumCorrection.Decode(word(res, 3)),
	}, nil
}

// ChangeModbusAddress writes a new slave address to the device. On success the
// session targets the new address, although the sensor only answers on it
// after a power cycle.
func (s *Session) ChangeModbusAddress(address int) error {
	const op = "change modbus address"
	if address < MinSlaveID || address > MaxSlaveID {
		return s.fail(&ValidationError{
			Field:  DeviceAddress.Name,
			Value:  address,
			Reason: fmt.Sprintf("must be between %d and %d", MinSlaveID, MaxSlaveID),
		})
	}
	if err := s.write(op, DeviceAddress, uint16(address)); err != nil {
		return err
	}
	old := s.slaveID
	s.setSlaveID(byte(address))
	log.Printf("modbus address changed %d -> %d; power cycle the sensor for the new address to take effect", old, address)
	return nil
}

// ChangeBaudRate stores a new line speed index on the device. The session keeps
// its own line settings; reconnect at the new rate afterwards.
func (s *Session) ChangeBaudRate(index int) error {
	const op = "change baud rate"
	rate, ok := BaudRates[index]
	if !ok {
		return s.fail(&ValidationError{
			Field:  BaudRate.Name,
			Value:  index,
			Reason: "use 0 (9600), 1 (14400) or 2 (19200)",
		})
	}
	if err := s.write(op, BaudRate, uint16(index)); err != nil {
		return err
	}
	log.Printf("baud rate changed to %d; reconnect at the new rate", rate)
	return nil
}

func (s *Session) SetTemperatureCorrection(correction float64) error {
	return s.setCorrection("set temperature correction", TempCorrection, correction)
}

func (s *Session) SetHumidityCorrection(correction float64) error {
	return s.setCorrection("set humidity correction", HumCorrection, correction)
}

func (s *Session) setCorrection(op string, reg Register, correction float64) error {
	if math.IsNaN(correction) || correction < -CorrectionLimit || correction > CorrectionLimit {
		return s.fail(&ValidationError{
			Field:  reg.Name,
			Value:  correction,
			Reason: fmt.Sprintf("use a value between %.1f and %.1f", -CorrectionLimit, CorrectionLimit),
		})
	}
	raw, err := reg.Encode(correction)
	if err != nil {
		return s.fail(&ValidationError{Field: reg.Name, Value: correction, Reason: err.Error()})
	}
	if err := s.write(op, reg, raw); err != nil {
		return err
	}
	log.Printf("%s set to %.1f%s", reg.Name, correction, reg.Unit)
	return nil
}

// setSlaveID is the only place the session's target address changes.
func (s *Session) setSlaveID(id byte) {
	s.slaveID = id
	s.link.SetSlaveID(id)
}

func (s *Session) read(op string, access Access, address, quantity uint16) ([]byte, error) {
	if !s.connected {
		return nil, s.fail(fmt.Errorf("%s: %w", op, ErrNotConnected))
	}
	var res []byte
	var err error
	if access == HoldingRegister {
		res, err = s.api.ReadHoldingRegisters(address, quantity)
	} else {
		res, err = s.api.ReadInputRegisters(address, quantity)
	}
	if err != nil {
		return nil, s.fail(wireError(op, err))
	}
	if len(res) < 2*int(quantity) {
		return nil, s.fail(&TransportError{
			Op:  op,
			Err: fmt.Errorf("short response: %d bytes for %d registers", len(res), quantity),
		})
	}
	return res, nil
}

func (s *Session) write(op string, reg Register, value uint16) error {
	if !s.connected {
		return s.fail(fmt.Errorf("%s: %w", op, ErrNotConnected))
	}
	if _, err := s.api.WriteSingleRegister(reg.Address, value); err != nil {
		return s.fail(wireError(op, err))
	}
	return nil
}

func (s *Session) fail(err error) error {
	log.Printf("slave %d: %v", s.slaveID, err)
	return err
}
