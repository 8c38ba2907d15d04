//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var stderr io.Writer = os.Stderr

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	clock  *hostClock
}

// New returns a host HAL with a width x height framebuffer. Log lines go to
// stderr.
func New(width, height int) HAL {
	return newHost(width, height, stderr)
}

func newHost(width, height int, logOut io.Writer) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: logOut},
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		clock:  newHostClock(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// AppFactory builds the per-frame step function against a HAL. Returning an
// error aborts the run before the first frame.
type AppFactory func(HAL) (func() error, error)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	// Scale multiplies the window size; the framebuffer stays Width x Height.
	Scale int
	TPS   int
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int
	// Hz paces the loop. 0 means 60; negative runs unpaced.
	Hz int
	// Ticks stops the run after N frames; 0 runs until the context ends.
	Ticks uint64
}
