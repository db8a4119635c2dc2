//go:build rp2040 || rp2350

package platform

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"

	"envpanel/display/oled"
	"envpanel/internal/platform/setups"
)

func setupDisplay(bus drivers.I2C, p setups.DisplayPlan) *oled.Panel {
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address: p.Addr,
		Width:   p.Width,
		Height:  p.Height,
	})
	dev.ClearDisplay()
	return oled.New(dev)
}
