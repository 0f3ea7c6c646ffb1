// Package menu is the interactive operator front end for a single XY-MD01 sensor.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	modbusClient "github.com/mehdieshraghi/modbus-MD-sensor/internal/client/modbus"
	modbusIface "github.com/mehdieshraghi/modbus-MD-sensor/internal/interface/modbus"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// OpenFunc builds an unconnected session for port and slave id.
type OpenFunc func(port string, slaveID int) (modbusIface.Sensor, error)

type Menu struct {
	in    *bufio.Scanner
	out   io.Writer
	open  OpenFunc
	port  string
	slave int
}

func New(in io.Reader, out io.Writer, open OpenFunc, port string, slaveID int) *Menu {
	return &Menu{
		in:    bufio.NewScanner(in),
		out:   out,
		open:  open,
		port:  port,
		slave: slaveID,
	}
}

// Run prompts for the connection, then serves menu choices until the
// operator exits, input ends, or the device address or baud rate changes.
func (m *Menu) Run() error {
	m.title("=== XY-MD01 Temperature & Humidity Sensor ===")
	port, err := m.promptString(fmt.Sprintf("Enter serial port [%s]: ", m.port), m.port)
	if err != nil {
		return ignoreEOF(err)
	}
	addr, err := m.promptInt(
		fmt.Sprintf("Enter sensor Modbus address (%d-%d) [%d]: ", modbusClient.MinSlaveID, modbusClient.MaxSlaveID, m.slave),
		modbusClient.MinSlaveID, modbusClient.MaxSlaveID, strconv.Itoa(m.slave))
	if err != nil {
		return ignoreEOF(err)
	}

	sensor, err := m.open(port, addr)
	if err != nil {
		return err
	}
	if err := sensor.Connect(); err != nil {
		m.fail("Error connecting to sensor: %v", err)
		return err
	}
	defer func() {
		if err := sensor.Disconnect(); err != nil {
			m.fail("Error closing serial port: %v", err)
		}
	}()

	for {
		m.printMenu()
		choice, err := m.promptInt("Enter your choice (1-7): ", 1, 7, "")
		if err != nil {
			return ignoreEOF(err)
		}
		done, err := m.dispatch(sensor, choice)
		if done || err != nil {
			return ignoreEOF(err)
		}
	}
}

func (m *Menu) printMenu() {
	m.title("=== Main Menu ===")
	fmt.Fprintln(m.out, "1. Read Temperature and Humidity")
	fmt.Fprintln(m.out, "2. Change Modbus Address")
	fmt.Fprintln(m.out, "3. Change Baud Rate")
	fmt.Fprintln(m.out, "4. Set Temperature Correction")
	fmt.Fprintln(m.out, "5. Set Humidity Correction")
	fmt.Fprintln(m.out, "6. Read Device Settings")
	fmt.Fprintln(m.out, "7. Exit")
}

// dispatch runs one menu choice and reports whether the session is over.
func (m *Menu) dispatch(sensor modbusIface.Sensor, choice int) (bool, error) {
	switch choice {
	case 1:
		m.title("=== Reading Sensor Data ===")
		v, err := sensor.ReadMeasurements()
		if err != nil {
			m.fail("Error reading values: %v", err)
			return false, nil
		}
		fmt.Fprintf(m.out, "Temperature: %.1f°C\n", v.Temperature)
		fmt.Fprintf(m.out, "Humidity: %.1f%%\n", v.Humidity)

	case 2:
		m.title("=== Change Modbus Address ===")
		addr, err := m.promptInt(
			fmt.Sprintf("Enter new Modbus address (%d-%d): ", modbusClient.MinSlaveID, modbusClient.MaxSlaveID),
			modbusClient.MinSlaveID, modbusClient.MaxSlaveID, "")
		if err != nil {
			return true, err
		}
		if err := sensor.ChangeModbusAddress(addr); err != nil {
			m.fail("Error changing Modbus address: %v", err)
			return false, nil
		}
		m.ok("Successfully changed Modbus address to: %d", addr)
		fmt.Fprintln(m.out, "Please power cycle the sensor, then restart the program and connect with the new address")
		return true, nil

	case 3:
		m.title("=== Change Baud Rate ===")
		fmt.Fprintln(m.out, "Available baud rates:")
		for i := 0; i < len(modbusClient.BaudRates); i++ {
			fmt.Fprintf(m.out, "%d: %d\n", i, modbusClient.BaudRates[i])
		}
		idx, err := m.promptInt(fmt.Sprintf("Enter baud rate index (0-%d): ", len(modbusClient.BaudRates)-1),
			0, len(modbusClient.BaudRates)-1, "")
		if err != nil {
			return true, err
		}
		if err := sensor.ChangeBaudRate(idx); err != nil {
			m.fail("Error changing baud rate: %v", err)
			return false, nil
		}
		m.ok("Successfully changed baud rate to: %d", modbusClient.BaudRates[idx])
		fmt.Fprintln(m.out, "Please restart the program with the new baud rate")
		return true, nil

	case 4, 5:
		title, name, set := "Temperature", "temperature", sensor.SetTemperatureCorrection
		if choice == 5 {
			title, name, set = "Humidity", "humidity", sensor.SetHumidityCorrection
		}
		m.title(fmt.Sprintf("=== Set %s Correction ===", title))
		c, err := m.promptFloat(
			fmt.Sprintf("Enter %s correction (%.1f to %.1f): ", name, -modbusClient.CorrectionLimit, modbusClient.CorrectionLimit),
			-modbusClient.CorrectionLimit, modbusClient.CorrectionLimit, "")
		if err != nil {
			return true, err
		}
		if err := set(c); err != nil {
			m.fail("Error setting %s correction: %v", name, err)
			return false, nil
		}
		m.ok("Successfully set %s correction to: %.1f", name, c)

	case 6:
		m.title("=== Device Settings ===")
		s, err := sensor.ReadSettings()
		if err != nil {
			m.fail("Error reading settings: %v", err)
			return false, nil
		}
		fmt.Fprintf(m.out, "Modbus address: %d\n", s.Address)
		fmt.Fprintf(m.out, "Baud rate: %d (index %d)\n", s.BaudRate, s.BaudIndex)
		fmt.Fprintf(m.out, "Temperature correction: %.1f°C\n", s.TempCorrection)
		fmt.Fprintf(m.out, "Humidity correction: %.1f%%\n", s.HumCorrection)

	case 7:
		fmt.Fprintln(m.out, "Goodbye!")
		return true, nil
	}
	return false, nil
}

func (m *Menu) promptString(label, def string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// promptFloat asks until a number within [min, max] is entered. An empty
// line selects def when def is set.
func (m *Menu) promptFloat(label string, min, max float64, def string) (float64, error) {
	for {
		fmt.Fprint(m.out, label)
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			line = def
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || math.IsNaN(v) {
			fmt.Fprintln(m.out, "Please enter a valid number")
			continue
		}
		if v < min || v > max {
			fmt.Fprintf(m.out, "Please enter a value between %g and %g\n", min, max)
			continue
		}
		return v, nil
	}
}

func (m *Menu) promptInt(label string, min, max int, def string) (int, error) {
	for {
		v, err := m.promptFloat(label, float64(min), float64(max), def)
		if err != nil {
			return 0, err
		}
		if v == math.Trunc(v) {
			return int(v), nil
		}
		fmt.Fprintln(m.out, "Please enter a whole number")
	}
}

func (m *Menu) readLine() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) title(s string) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, titleStyle.Render(s))
}

func (m *Menu) ok(format string, args ...any) {
	fmt.Fprintln(m.out, okStyle.Render(fmt.Sprintf(format, args...)))
}

func (m *Menu) fail(format string, args ...any) {
	fmt.Fprintln(m.out, errStyle.Render(fmt.Sprintf(format, args...)))
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
