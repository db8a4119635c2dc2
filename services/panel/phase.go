package panel

import (
	"context"
	"time"

	"envpanel/climate"
	"envpanel/types"
	"envpanel/x/mathx"
	"envpanel/x/ramp"
	"envpanel/x/timex"
)

// Controller owns the phase timing of a cycle and the live-phase animation.
// It does no error handling of its own: Flush errors are returned as-is.
type Controller struct {
	disp  Display
	clock timex.Clock
	sweep ramp.Sawtooth
	state types.PhaseState

	// OnEnter, when set, is called each time a phase starts.
	OnEnter func(types.PhaseState)
}

// NewController returns a Controller in PhaseIdle. The marker sweeps the
// display width as reported at construction.
func NewController(d Display, c timex.Clock) *Controller {
	return &Controller{
		disp:  d,
		clock: c,
		sweep: ramp.NewSawtooth(d.Width(), 1),
	}
}

// State returns the current phase and when it started.
func (c *Controller) State() types.PhaseState { return c.state }

func (c *Controller) enter(p types.Phase) time.Duration {
	c.state = types.PhaseState{Phase: p, Start: c.clock.Now()}
	if c.OnEnter != nil {
		c.OnEnter(c.state)
	}
	return c.state.Start
}

// RunLive redraws the temperature and humidity rows with the sweeping marker
// until d has elapsed. Frames are paced against deadlines start+k*FrameInterval
// and the marker sits at the number of whole intervals elapsed, so a slow
// flush drops frames but never slows the sweep. The last wait is cut to the
// time remaining, so the phase overruns d by at most one frame's render time.
func (c *Controller) RunLive(ctx context.Context, content climate.Content, d time.Duration) error {
	start := c.enter(types.PhaseLive)
	for {
		tick := int((c.clock.Now() - start) / FrameInterval)
		c.disp.Clear()
		c.disp.DrawText(RowTemperature, content.Temperature)
		c.disp.DrawText(RowHumidity, content.Humidity)
		c.disp.DrawMarker(c.sweep.At(tick), MarkerY, MarkerSize)
		if err := c.disp.Flush(); err != nil {
			return err
		}

		elapsed := c.clock.Now() - start
		if elapsed >= d {
			return nil
		}
		next := (elapsed/FrameInterval + 1) * FrameInterval
		wait := mathx.Max(0, mathx.Min(next, d)-elapsed)
		if !c.clock.Sleep(ctx, wait) {
			return ctx.Err()
		}
		if c.clock.Now()-start >= d {
			return nil
		}
	}
}

// RunSummary shows the condition row once and holds it for d.
func (c *Controller) RunSummary(ctx context.Context, content climate.Content, d time.Duration) error {
	start := c.enter(types.PhaseSummary)
	c.disp.Clear()
	c.disp.DrawText(RowCondition, content.Condition)
	if err := c.disp.Flush(); err != nil {
		return err
	}
	if !c.clock.Sleep(ctx, d-(c.clock.Now()-start)) {
		return ctx.Err()
	}
	return nil
}
