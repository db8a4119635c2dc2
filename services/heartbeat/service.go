// Package heartbeat logs a periodic liveness line summarising what the
// panel loop has published since boot.
package heartbeat

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"envpanel/bus"
	"envpanel/types"
)

var topicPanel = bus.T("panel", bus.Multi)

// Stats counts panel activity observed on the bus.
type Stats struct {
	Readings  int
	Faults    int
	Phase     types.Phase
	LastFault string
}

type Service struct {
	interval time.Duration
	log      *slog.Logger
	start    time.Time

	mu    sync.Mutex
	stats Stats
}

// New returns a heartbeat logging every interval (default 30 s). A nil log
// discards output.
func New(interval time.Duration, log *slog.Logger) *Service {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		interval: interval,
		log:      log.With(slog.String("component", "heartbeat")),
		start:    time.Now(),
	}
}

// Stats returns a copy of the counters.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Service) observe(msg *bus.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch p := msg.Payload.(type) {
	case types.PanelReading:
		s.stats.Readings++
	case types.Fault:
		s.stats.Faults++
		s.stats.LastFault = p.Code
	case types.PhaseState:
		s.stats.Phase = p.Phase
	}
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	sub := conn.Subscribe(topicPanel)
	defer conn.Unsubscribe(sub)

	tick := time.NewTicker(s.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("heartbeat stopping")
			return
		case <-tick.C:
			st := s.Stats()
			s.log.Info("heartbeat",
				slog.Duration("uptime", time.Since(s.start).Truncate(time.Second)),
				slog.String("phase", st.Phase.String()),
				slog.Int("readings", st.Readings),
				slog.Int("faults", st.Faults),
				slog.String("last_fault", st.LastFault))
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			s.observe(msg)
		}
	}
}

// Start runs the heartbeat until ctx is cancelled.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
