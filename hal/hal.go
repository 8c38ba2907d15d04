package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrExit is returned from a step function to end the run cleanly.
var ErrExit = errors.New("hal: exit requested")

// ErrFrameSize reports a Present call whose pixel slice does not match the
// framebuffer dimensions.
var ErrFrameSize = errors.New("hal: frame size mismatch")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB888 is one uint32 per pixel: 0x00RRGGBB.
	PixelFormatRGB888 PixelFormat = iota + 1
)

// Framebuffer accepts finished frames for display.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	// Present copies pix (row-major, Width*Height entries) to the display.
	Present(pix []uint32) error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyT
	KeyR
)

func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEscape:
		return "Escape"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyQ:
		return "Q"
	case KeyE:
		return "E"
	case KeyT:
		return "T"
	case KeyR:
		return "R"
	default:
		return "Unknown"
	}
}

// KeyEvent is a press or release transition.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Clock counts frames driven by the runner and the wall time since start.
type Clock interface {
	Frames() uint64
	Elapsed() time.Duration
}

// HAL provides the only contact point between the visualizer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clock() Clock
}
