// Package config loads runtime settings from an optional .env file and
// ORRERY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"orrery/internal/logging"

	"github.com/joho/godotenv"
)

type Config struct {
	Window   WindowConfig
	Sim      SimConfig
	HUD      bool
	LogLevel slog.Level
}

type WindowConfig struct {
	Width  int
	Height int
	Scale  int
	TPS    int
}

type SimConfig struct {
	// TimeStep is added to the simulation clock every frame.
	TimeStep float32
	// StatsEvery logs frame statistics every N frames; 0 disables them.
	StatsEvery int
}

var (
	ErrInvalidSize     = errors.New("window size must be positive")
	ErrInvalidScale    = errors.New("window scale must be positive")
	ErrInvalidTPS      = errors.New("tps must be positive")
	ErrInvalidTimeStep = errors.New("time step must be a finite non-negative number")
	ErrInvalidStats    = errors.New("stats interval must not be negative")
)

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window:   WindowConfig{Width: 800, Height: 600, Scale: 1, TPS: 60},
		Sim:      SimConfig{TimeStep: 0.01, StatsEvery: 300},
		HUD:      true,
		LogLevel: slog.LevelInfo,
	}
}

// Load reads .env files (a missing file is fine), then the environment, then
// validates the result.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	cfg, err := FromEnv(os.LookupEnv)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// FromEnv builds a Config from lookup, falling back to Default for unset keys.
// Malformed values are errors.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	if cfg.Window.Width, err = envInt(lookup, "ORRERY_WIDTH", cfg.Window.Width); err != nil {
		return cfg, err
	}
	if cfg.Window.Height, err = envInt(lookup, "ORRERY_HEIGHT", cfg.Window.Height); err != nil {
		return cfg, err
	}
	if cfg.Window.Scale, err = envInt(lookup, "ORRERY_SCALE", cfg.Window.Scale); err != nil {
		return cfg, err
	}
	if cfg.Window.TPS, err = envInt(lookup, "ORRERY_TPS", cfg.Window.TPS); err != nil {
		return cfg, err
	}
	if cfg.Sim.StatsEvery, err = envInt(lookup, "ORRERY_STATS_EVERY", cfg.Sim.StatsEvery); err != nil {
		return cfg, err
	}
	if v, ok := lookup("ORRERY_TIME_STEP"); ok && strings.TrimSpace(v) != "" {
		f, perr := strconv.ParseFloat(strings.TrimSpace(v), 32)
		if perr != nil {
			return cfg, fmt.Errorf("ORRERY_TIME_STEP: %w", perr)
		}
		cfg.Sim.TimeStep = float32(f)
	}
	if v, ok := lookup("ORRERY_HUD"); ok && strings.TrimSpace(v) != "" {
		b, perr := strconv.ParseBool(strings.TrimSpace(v))
		if perr != nil {
			return cfg, fmt.Errorf("ORRERY_HUD: %w", perr)
		}
		cfg.HUD = b
	}
	if v, ok := lookup(logging.EnvLevel); ok && strings.TrimSpace(v) != "" {
		level, ok := logging.ParseLevel(v)
		if !ok {
			return cfg, fmt.Errorf("%s: unknown level %q", logging.EnvLevel, v)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

func envInt(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTPS, c.Window.TPS)
	}
	ts := c.Sim.TimeStep
	if ts != ts || ts < 0 || ts > 1e30 {
		return fmt.Errorf("%w: %v", ErrInvalidTimeStep, ts)
	}
	if c.Sim.StatsEvery < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStats, c.Sim.StatsEvery)
	}
	return nil
}
