//go:build !tinygo

package hal

import (
	"sync/atomic"
	"time"
)

type hostClock struct {
	start  time.Time
	frames atomic.Uint64
}

func newHostClock() *hostClock {
	return &hostClock{start: time.Now()}
}

func (c *hostClock) Frames() uint64         { return c.frames.Load() }
func (c *hostClock) Elapsed() time.Duration { return time.Since(c.start) }

func (c *hostClock) step() { c.frames.Add(1) }
