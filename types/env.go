package types

// ------------------------
// Temperature & humidity
// ------------------------

// Reading is one sensor sample in fixed-point tenths.
// Valid for the cycle that produced it only.
type Reading struct {
	DeciC  int32 `json:"deci_c"`  // tenths of °C (231 => 23.1°C)
	DeciRH int32 `json:"deci_rh"` // tenths of %RH (601 => 60.1%)
}

// Condition is the discrete band a temperature falls into.
type Condition uint8

const (
	Cold Condition = iota
	Normal
	Hot
)

func (c Condition) String() string {
	switch c {
	case Cold:
		return "Cold"
	case Normal:
		return "Normal"
	case Hot:
		return "Hot"
	}
	return "Unknown"
}

// SensorInfo describes the sensor bound by the board setup.
type SensorInfo struct {
	Sensor string `json:"sensor"`         // "dht11", "aht20", "sim"
	Addr   uint16 `json:"addr,omitempty"` // I2C address, 0 for single-wire
	Bus    string `json:"bus,omitempty"`  // "i2c0", ...
	Pin    int    `json:"pin,omitempty"`  // data pin for single-wire sensors
}
