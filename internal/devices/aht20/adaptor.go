// Package aht20 adapts the AHT20 driver to panel.Sensor. The sensor sits on
// the same I2C bus as the display.
package aht20

import (
	"envpanel/drivers/aht20"
	"envpanel/types"
	"envpanel/x/mathx"
)

type Adaptor struct {
	dev *aht20.Device
}

func New(dev *aht20.Device) *Adaptor { return &Adaptor{dev: dev} }

// ReadOnce runs one trigger/collect cycle, bounded by the driver's
// CollectTimeout.
func (a *Adaptor) ReadOnce() (types.Reading, error) {
	s, err := a.dev.Read()
	if err != nil {
		return types.Reading{}, err
	}
	return types.Reading{
		DeciC:  s.DeciCelsius(),
		DeciRH: mathx.Clamp(s.DeciRelHumidity(), 0, 1000),
	}, nil
}
