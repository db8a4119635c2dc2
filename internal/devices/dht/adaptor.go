// Package dht adapts a DHT11/DHT22 single-wire sensor to panel.Sensor.
//
// The concrete driver is tinygo.org/x/drivers/dht, which needs the TinyGo
// machine package; the adaptor only depends on the two calls it makes so
// it builds and tests on the host.
package dht

import (
	"envpanel/types"
	"envpanel/x/mathx"
)

// Device is the subset of tinygo.org/x/drivers/dht.Device used here.
type Device interface {
	ReadMeasurements() error
	Measurements() (temperature int16, humidity uint16, err error)
}

// Adaptor reads one measurement per call. Driver errors (no response,
// checksum mismatch) are returned unchanged.
type Adaptor struct {
	dev Device
}

func New(dev Device) *Adaptor { return &Adaptor{dev: dev} }

// ReadOnce triggers a transfer and returns it in tenths of °C and %RH.
func (a *Adaptor) ReadOnce() (types.Reading, error) {
	if err := a.dev.ReadMeasurements(); err != nil {
		return types.Reading{}, err
	}
	t, h, err := a.dev.Measurements()
	if err != nil {
		return types.Reading{}, err
	}
	return types.Reading{
		DeciC:  int32(t),
		DeciRH: mathx.Clamp(int32(h), 0, 1000),
	}, nil
}
