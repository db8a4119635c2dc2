// Package setups holds the wiring plans for supported boards. A plan names
// pins, addresses and rates only; the platform package turns it into
// configured peripherals.
package setups

import (
	"errors"

	"envpanel/types"
)

// Plan is the complete wiring of one board build.
type Plan struct {
	Name    string
	I2C     I2CPlan
	Display DisplayPlan
	Sensor  SensorPlan
	Console UARTPlan
}

type I2CPlan struct {
	ID  string // "i2c0" or "i2c1"
	SDA int    // GPIO number
	SCL int    // GPIO number
	Hz  uint32 // bus frequency
}

type DisplayPlan struct {
	Addr   uint16
	Width  int16
	Height int16
}

// Sensor types.
const (
	SensorDHT11 = "dht11"
	SensorDHT22 = "dht22"
	SensorAHT20 = "aht20"
)

type SensorPlan struct {
	Type string
	Pin  int    // data pin for DHT sensors
	Addr uint16 // I2C address for AHT20; shares the display bus
}

type UARTPlan struct {
	ID   string // "uart0" or "uart1"
	TX   int
	RX   int
	Baud uint32
}

var (
	ErrNoI2C       = errors.New("setups: missing i2c plan")
	ErrNoDisplay   = errors.New("setups: missing display geometry")
	ErrBadSensor   = errors.New("setups: unknown sensor type")
	ErrPinConflict = errors.New("setups: sensor pin overlaps i2c pins")
	ErrBadPin      = errors.New("setups: gpio out of range")
)

// GPIOMax is the highest user GPIO on RP2 boards.
const GPIOMax = 28

// Validate checks a plan for wiring mistakes that would otherwise surface
// as silent bus errors.
func (p Plan) Validate() error {
	if p.I2C.ID == "" || p.I2C.Hz == 0 {
		return ErrNoI2C
	}
	if p.Display.Addr == 0 || p.Display.Width <= 0 || p.Display.Height <= 0 {
		return ErrNoDisplay
	}
	for _, pin := range []int{p.I2C.SDA, p.I2C.SCL} {
		if pin < 0 || pin > GPIOMax {
			return ErrBadPin
		}
	}
	switch p.Sensor.Type {
	case SensorDHT11, SensorDHT22:
		if p.Sensor.Pin < 0 || p.Sensor.Pin > GPIOMax {
			return ErrBadPin
		}
		if p.Sensor.Pin == p.I2C.SDA || p.Sensor.Pin == p.I2C.SCL {
			return ErrPinConflict
		}
	case SensorAHT20:
	default:
		return ErrBadSensor
	}
	return nil
}

// SensorInfo describes the plan's sensor for logs.
func (p Plan) SensorInfo() types.SensorInfo {
	switch p.Sensor.Type {
	case SensorAHT20:
		return types.SensorInfo{Sensor: p.Sensor.Type, Addr: p.Sensor.Addr, Bus: p.I2C.ID}
	default:
		return types.SensorInfo{Sensor: p.Sensor.Type, Pin: p.Sensor.Pin}
	}
}
