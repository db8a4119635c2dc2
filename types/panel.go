package types

import "time"

// ------------------------
// Panel phases (retained)
// ------------------------

// Phase is the display phase of the current cycle.
type Phase uint8

const (
	PhaseIdle Phase = iota // before the first successful reading
	PhaseLive
	PhaseSummary
)

func (p Phase) String() string {
	switch p {
	case PhaseLive:
		return "live"
	case PhaseSummary:
		return "summary"
	}
	return "idle"
}

// PhaseState is owned by the phase controller; Start is a monotonic clock
// offset, not wall time.
type PhaseState struct {
	Phase Phase         `json:"phase"`
	Start time.Duration `json:"start"`
}

// PanelReading is published once per successful read.
type PanelReading struct {
	Reading   Reading   `json:"reading"`
	Condition Condition `json:"condition"`
	TS        int64     `json:"ts_ms"`
}

// Fault is published for every recovered cycle failure.
type Fault struct {
	Code string `json:"code"` // errcode.Code value
	Err  string `json:"err"`
	TS   int64  `json:"ts_ms"`
}

// Frame is a packed 1-bit framebuffer snapshot, row-major, LSB first.
type Frame struct {
	Width  int    `json:"w"`
	Height int    `json:"h"`
	Bits   []byte `json:"bits"`
	Seq    uint32 `json:"seq"`
}

// On reports whether pixel (x, y) is lit. Out-of-range pixels are off.
func (f Frame) On(x, y int) bool {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return false
	}
	i := y*f.Width + x
	return f.Bits[i>>3]&(1<<(i&7)) != 0
}
