//go:build rp2040 || rp2350

package platform

import (
	"errors"
	"machine"

	"envpanel/internal/platform/setups"
)

var errUnknownBus = errors.New("platform: unknown bus id")

func setupI2C(p setups.I2CPlan) (*machine.I2C, error) {
	var hw *machine.I2C
	switch p.ID {
	case "i2c0":
		hw = machine.I2C0
	case "i2c1":
		hw = machine.I2C1
	default:
		return nil, errUnknownBus
	}
	sda := machine.Pin(p.SDA)
	scl := machine.Pin(p.SCL)
	sda.Configure(machine.PinConfig{Mode: machine.PinI2C})
	scl.Configure(machine.PinConfig{Mode: machine.PinI2C})
	if err := hw.Configure(machine.I2CConfig{
		SCL:       scl,
		SDA:       sda,
		Frequency: p.Hz,
	}); err != nil {
		return nil, err
	}
	return hw, nil
}
