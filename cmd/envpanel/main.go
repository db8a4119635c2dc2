//go:build rp2040 || rp2350

package main

import (
	"context"
	"log/slog"
	"time"

	"envpanel/bus"
	"envpanel/internal/platform"
	"envpanel/internal/platform/setups"
	"envpanel/services/heartbeat"
	"envpanel/services/panel"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot", setups.Selected.Name)

	board, err := platform.Setup(setups.Selected)
	if err != nil {
		for {
			println("board setup failed:", err.Error())
			time.Sleep(5 * time.Second)
		}
	}

	log := slog.New(slog.NewTextHandler(board.Console, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("board ready",
		slog.String("plan", setups.Selected.Name),
		slog.String("sensor", board.Info.Sensor))

	ctx := context.Background()
	b := bus.NewBus(4)
	_ = heartbeat.New(30*time.Second, log).Start(ctx, b.NewConnection("heartbeat"))

	svc := panel.New(board.Sensor, board.Display, panel.Options{
		Log:  log,
		Conn: b.NewConnection("panel"),
	})
	_ = svc.Run(ctx)
}
