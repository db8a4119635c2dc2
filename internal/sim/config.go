// Package sim drives the panel service on the host: a scripted sensor that
// walks through all three condition bands, and a terminal view of the
// framebuffer the service draws on.
package sim

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is read from PANEL_SIM_* environment variables, optionally seeded
// from a .env file. Temperatures and humidity are in tenths.
type Config struct {
	StartDeciC int32 `validate:"gtefield=LowDeciC,ltefield=HighDeciC"`
	LowDeciC   int32 `validate:"gte=-400,ltfield=HighDeciC"`
	HighDeciC  int32 `validate:"lte=800"`
	StepDeciC  int32 `validate:"gte=1,lte=100"`
	DeciRH     int32 `validate:"gte=0,lte=1000"`

	// FailEvery makes every n-th read fail; 0 disables it.
	FailEvery int `validate:"gte=0"`
	// DisplayFailAfter makes the n-th flush fail once; 0 disables it.
	DisplayFailAfter int `validate:"gte=0"`

	LogFile  string `validate:"required"`
	LogLevel string `validate:"oneof=debug info warn error"`
}

// Defaults start in the Cold band and cross Normal into Hot within a few
// cycles.
func Defaults() Config {
	return Config{
		StartDeciC: 220,
		LowDeciC:   180,
		HighDeciC:  340,
		StepDeciC:  15,
		DeciRH:     450,
		FailEvery:  7,
		LogFile:    "panelsim.log",
		LogLevel:   "info",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load applies .env files (default ".env", missing files ignored), then the
// environment, over Defaults and validates the result.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv over Defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Defaults()
	var err error
	set32 := func(key string, dst *int32) {
		if v := getenv(key); v != "" && err == nil {
			var n int64
			if n, err = strconv.ParseInt(v, 10, 32); err != nil {
				err = fmt.Errorf("invalid %s: %w", key, err)
				return
			}
			*dst = int32(n)
		}
	}
	setInt := func(key string, dst *int) {
		if v := getenv(key); v != "" && err == nil {
			if *dst, err = strconv.Atoi(v); err != nil {
				err = fmt.Errorf("invalid %s: %w", key, err)
			}
		}
	}
	set32("PANEL_SIM_START_DECI_C", &c.StartDeciC)
	set32("PANEL_SIM_LOW_DECI_C", &c.LowDeciC)
	set32("PANEL_SIM_HIGH_DECI_C", &c.HighDeciC)
	set32("PANEL_SIM_STEP_DECI_C", &c.StepDeciC)
	set32("PANEL_SIM_DECI_RH", &c.DeciRH)
	setInt("PANEL_SIM_FAIL_EVERY", &c.FailEvery)
	setInt("PANEL_SIM_DISPLAY_FAIL_AFTER", &c.DisplayFailAfter)
	if v := getenv("PANEL_SIM_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := getenv("PANEL_SIM_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if err != nil {
		return Config{}, err
	}
	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Level maps LogLevel to a slog level.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
