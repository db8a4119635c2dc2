// Package panel is the sample-and-render loop of the environment panel and
// the phase controller it drives.
//
// Each cycle reads the sensor once, classifies and formats the reading, then
// shows a live phase (readings plus a sweeping marker) followed by a summary
// phase (condition label). Failures are recovered at the cycle boundary.
package panel

import (
	"time"

	"envpanel/bus"
	"envpanel/types"
)

// Fixed timing. Not configurable at runtime.
const (
	LiveDuration    = 10 * time.Second
	SummaryDuration = 10 * time.Second
	// FrameInterval is the marker step period of the live phase: the marker
	// moves 1 px per interval, so a 128 px sweep takes 2.56 s and the marker
	// crosses the display about four times whatever the flush cost.
	FrameInterval = 20 * time.Millisecond
	// RetryDelay follows every failed cycle. It matches the DHT11 minimum
	// sampling period.
	RetryDelay = time.Second
)

// Layout in display row units and pixels.
const (
	RowTemperature = 1
	RowHumidity    = 3
	RowCondition   = 3

	MarkerY    = 50
	MarkerSize = 10
)

// Bus topics, all retained except frames.
var (
	TopicReading = bus.T("panel", "reading")
	TopicPhase   = bus.T("panel", "phase")
	TopicFault   = bus.T("panel", "fault")
	TopicFrame   = bus.T("panel", "frame")
)

// Sensor performs one blocking, bounded measurement. It does not retry.
type Sensor interface {
	ReadOnce() (types.Reading, error)
}

// Display is a buffered text/marker surface. Draw calls only touch the
// buffer; Flush makes them visible and is the only call that can fail.
type Display interface {
	Clear()
	DrawText(row int, text string)
	DrawMarker(x, y, size int)
	Flush() error
	Width() int
}
