package panel

import (
	"context"
	"io"
	"log/slog"

	"envpanel/bus"
	"envpanel/climate"
	"envpanel/errcode"
	"envpanel/types"
	"envpanel/x/timex"
)

// Options carries the collaborators the loop does not strictly need.
// Zero values are replaced with defaults.
type Options struct {
	Clock timex.Clock     // default: timex.NewSystem()
	Log   *slog.Logger    // default: discard
	Conn  *bus.Connection // optional; nil disables publishing
}

// Service runs the sample-and-render loop. It owns the reading, the display
// content and the phase state of the current cycle; nothing is shared with
// other goroutines except what it publishes on the bus.
type Service struct {
	sensor Sensor
	disp   Display
	clock  timex.Clock
	log    *slog.Logger
	conn   *bus.Connection
	ctrl   *Controller
}

// New wires a Service around one sensor and one display. Both must already
// be initialised.
func New(s Sensor, d Display, o Options) *Service {
	if o.Clock == nil {
		o.Clock = timex.NewSystem()
	}
	if o.Log == nil {
		o.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	svc := &Service{
		sensor: s,
		disp:   d,
		clock:  o.Clock,
		log:    o.Log.With(slog.String("component", "panel")),
		conn:   o.Conn,
		ctrl:   NewController(d, o.Clock),
	}
	svc.ctrl.OnEnter = svc.publishPhase
	return svc
}

// Controller exposes the phase controller, mainly for inspection.
func (s *Service) Controller() *Controller { return s.ctrl }

// Run repeats RunCycle until ctx is cancelled. Cycle failures are logged
// and never end the loop.
func (s *Service) Run(ctx context.Context) error {
	s.log.Info("panel loop starting",
		slog.Duration("live", LiveDuration),
		slog.Duration("summary", SummaryDuration),
		slog.Duration("frame", FrameInterval))
	for {
		if err := s.RunCycle(ctx); err != nil && ctx.Err() != nil {
			s.log.Info("panel loop stopping")
			return ctx.Err()
		}
	}
}

// RunCycle performs one sensor read and, if it succeeds, the live and
// summary phases. It returns nil for a complete cycle, the recovered
// sensor_read, format_overflow or display_write error, or ctx's error once
// cancelled. After a recovered failure it waits RetryDelay.
//
// A failed read touches neither the display nor the phase state.
func (s *Service) RunCycle(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r, err := s.sensor.ReadOnce()
	if err != nil {
		return s.fail(ctx, errcode.Wrap(errcode.SensorRead, "read", err))
	}

	cond := climate.Classify(r.DeciC)
	content, err := climate.Format(r, cond)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.log.Debug("reading",
		slog.Int("deci_c", int(r.DeciC)),
		slog.Int("deci_rh", int(r.DeciRH)),
		slog.String("condition", cond.String()))
	s.publish(TopicReading, types.PanelReading{Reading: r, Condition: cond, TS: timex.NowMs()})

	if err := s.ctrl.RunLive(ctx, content, LiveDuration); err != nil {
		return s.fail(ctx, err)
	}
	if err := s.ctrl.RunSummary(ctx, content, SummaryDuration); err != nil {
		return s.fail(ctx, err)
	}
	return nil
}

// fail reports a failed cycle and backs off. Cancellation is passed
// through unreported.
func (s *Service) fail(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	code := errcode.Of(err)
	switch code {
	case errcode.SensorRead:
		s.log.Warn("failed to read data from sensor", slog.Any("err", err))
	default:
		s.log.Warn("cycle aborted", slog.String("code", string(code)), slog.Any("err", err))
	}
	s.publish(TopicFault, types.Fault{Code: string(code), Err: err.Error(), TS: timex.NowMs()})

	if !s.clock.Sleep(ctx, RetryDelay) {
		return ctx.Err()
	}
	return err
}

func (s *Service) publishPhase(st types.PhaseState) {
	s.log.Debug("phase", slog.String("phase", st.Phase.String()))
	s.publish(TopicPhase, st)
}

func (s *Service) publish(t bus.Topic, payload any) {
	if s.conn == nil {
		return
	}
	s.conn.Publish(s.conn.NewMessage(t, payload, true))
}
