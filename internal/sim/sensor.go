package sim

import (
	"errors"
	"sync"

	"envpanel/types"
	"envpanel/x/mathx"
)

// ErrNoResponse mimics a single-wire sensor that never pulled the line low.
var ErrNoResponse = errors.New("sim: sensor did not respond")

// Sensor bounces the temperature between LowDeciC and HighDeciC by
// StepDeciC per successful read. Humidity moves opposite to it.
type Sensor struct {
	mu    sync.Mutex
	cfg   Config
	deciC int32
	dir   int32
	reads int
}

func NewSensor(cfg Config) *Sensor {
	return &Sensor{
		cfg:   cfg,
		deciC: mathx.Clamp(cfg.StartDeciC, cfg.LowDeciC, cfg.HighDeciC),
		dir:   1,
	}
}

// Reads returns the number of ReadOnce calls so far, failed ones included.
func (s *Sensor) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func (s *Sensor) ReadOnce() (types.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++
	if s.cfg.FailEvery > 0 && s.reads%s.cfg.FailEvery == 0 {
		return types.Reading{}, ErrNoResponse
	}
	r := types.Reading{
		DeciC:  s.deciC,
		DeciRH: mathx.Clamp(s.cfg.DeciRH-(s.deciC-s.cfg.StartDeciC), 0, 1000),
	}

	next := s.deciC + s.dir*s.cfg.StepDeciC
	if next >= s.cfg.HighDeciC || next <= s.cfg.LowDeciC {
		s.dir = -s.dir
	}
	s.deciC = mathx.Clamp(next, s.cfg.LowDeciC, s.cfg.HighDeciC)
	return r, nil
}
