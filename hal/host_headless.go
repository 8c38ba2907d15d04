//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"
)

// RunHeadless drives the app without opening a window. It returns nil when
// the tick budget is spent or the app asks to exit, and the context error when
// ctx ends first.
func RunHeadless(ctx context.Context, newApp AppFactory, cfg HeadlessConfig) error {
	if cfg.Hz == 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid headless size: %dx%d", cfg.Width, cfg.Height)
	}

	h := newHost(cfg.Width, cfg.Height, stderr)
	return runHeadless(ctx, h, newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp AppFactory, cfg HeadlessConfig) error {
	step, err := newApp(h)
	if err != nil {
		return err
	}

	limit := rate.Inf
	if cfg.Hz > 0 {
		limit = rate.Limit(cfg.Hz)
	}
	lim := rate.NewLimiter(limit, 1)

	for tick := uint64(0); cfg.Ticks == 0 || tick < cfg.Ticks; tick++ {
		if err := lim.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return err
		}
		h.clock.step()
		if step == nil {
			continue
		}
		if err := step(); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
	return nil
}
