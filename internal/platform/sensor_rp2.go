//go:build rp2040 || rp2350

package platform

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/dht"

	aht20drv "envpanel/drivers/aht20"
	aht20dev "envpanel/internal/devices/aht20"
	dhtdev "envpanel/internal/devices/dht"
	"envpanel/internal/platform/setups"
	"envpanel/services/panel"
)

func setupSensor(bus drivers.I2C, p setups.SensorPlan) (panel.Sensor, error) {
	switch p.Type {
	case setups.SensorDHT11:
		return dhtdev.New(dht.New(machine.Pin(p.Pin), dht.DHT11)), nil
	case setups.SensorDHT22:
		return dhtdev.New(dht.New(machine.Pin(p.Pin), dht.DHT22)), nil
	case setups.SensorAHT20:
		dev := aht20drv.New(bus)
		if err := dev.Configure(aht20drv.Config{Address: p.Addr}); err != nil {
			return nil, err
		}
		return aht20dev.New(dev), nil
	}
	return nil, setups.ErrBadSensor
}
