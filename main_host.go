//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"orrery/app"
	"orrery/hal"
	"orrery/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var headless hal.HeadlessConfig
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", cfg.Window.TPS, "Frame rate in headless mode (negative = unpaced).")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.IntVar(&cfg.Window.Width, "width", cfg.Window.Width, "Framebuffer width in pixels.")
	flag.IntVar(&cfg.Window.Height, "height", cfg.Window.Height, "Framebuffer height in pixels.")
	flag.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Draw the text overlay.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, app.Config{
			TimeStep:   cfg.Sim.TimeStep,
			HUD:        cfg.HUD,
			StatsEvery: cfg.Sim.StatsEvery,
			LogLevel:   cfg.LogLevel,
		})
	}

	if headless.Enabled {
		headless.Width, headless.Height = cfg.Window.Width, cfg.Window.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(hal.WindowConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Scale:  cfg.Window.Scale,
		TPS:    cfg.Window.TPS,
	}, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
