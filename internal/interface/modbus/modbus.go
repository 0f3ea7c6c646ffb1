package modbus

// API is the subset of the goburrow modbus.Client used against the XY-MD01.
type API interface {
	ReadInputRegisters(address, quantity uint16) (results []byte, err error)
	ReadHoldingRegisters(address, quantity uint16) (results []byte, err error)
	WriteSingleRegister(address, value uint16) (results []byte, err error)
}

// Link is the serial line underneath an API.
type Link interface {
	Connect() error
	Close() error
	SetSlaveID(id byte)
}

type Measurement struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

type Settings struct {
	Address        int     `json:"address"`
	BaudIndex      int     `json:"baud_index"`
	BaudRate       int     `json:"baud_rate"`
	TempCorrection float64 `json:"temp_correction"`
	HumCorrection  float64 `json:"hum_correction"`
}

// Sensor is a session with one XY-MD01 slave.
type Sensor interface {
	Connect() error
	Disconnect() error
	SlaveID() byte
	ReadMeasurements() (Measurement, error)
	ReadSettings() (Settings, error)
	ChangeModbusAddress(address int) error
	ChangeBaudRate(index int) error
	SetTemperatureCorrection(correction float64) error
	SetHumidityCorrection(correction float64) error
}
