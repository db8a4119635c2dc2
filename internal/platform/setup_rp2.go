//go:build rp2040 || rp2350

package platform

import "envpanel/internal/platform/setups"

// Setup configures the console first so later failures can be logged, then
// the shared I2C bus, the display and the sensor.
func Setup(p setups.Plan) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	console, err := setupConsole(p.Console)
	if err != nil {
		return nil, err
	}
	bus, err := setupI2C(p.I2C)
	if err != nil {
		return nil, err
	}
	disp := setupDisplay(bus, p.Display)
	sensor, err := setupSensor(bus, p.Sensor)
	if err != nil {
		return nil, err
	}
	return &Board{
		Sensor:  sensor,
		Display: disp,
		Console: console,
		Info:    p.SensorInfo(),
	}, nil
}
