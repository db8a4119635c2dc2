// Package platform turns a board plan into the collaborators the panel
// service needs: a sensor, a display and a console for logs.
package platform

import (
	"io"

	"envpanel/services/panel"
	"envpanel/types"
)

// Board is the configured hardware of one boot.
type Board struct {
	Sensor  panel.Sensor
	Display panel.Display
	Console io.Writer
	Info    types.SensorInfo
}
