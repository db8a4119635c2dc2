//go:build !rp2040 && !rp2350

// Command panelsim runs the panel loop against a scripted sensor and shows
// the 128x64 framebuffer in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"envpanel/bus"
	"envpanel/display/fb"
	"envpanel/display/oled"
	"envpanel/internal/sim"
	"envpanel/services/panel"
	"envpanel/types"
)

var errInjectedFlush = errors.New("panelsim: injected flush failure")

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := sim.Load()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	lf, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer lf.Close()
	log := slog.New(slog.NewTextHandler(lf, &slog.HandlerOptions{Level: cfg.Level()}))

	b := bus.NewBus(16)
	frames := b.NewConnection("fb")
	buf := fb.New(128, 64)
	buf.OnFlush(func(f types.Frame) error {
		frames.Publish(frames.NewMessage(panel.TopicFrame, f, false))
		return nil
	})
	if cfg.DisplayFailAfter > 0 {
		buf.FailAfter(cfg.DisplayFailAfter, errInjectedFlush)
	}

	svc := panel.New(sim.NewSensor(cfg), oled.New(buf), panel.Options{
		Log:  log,
		Conn: b.NewConnection("panel"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	p := tea.NewProgram(sim.NewModel(b.NewConnection("tui")), tea.WithAltScreen())
	_, err = p.Run()
	cancel()
	<-done
	return err
}
