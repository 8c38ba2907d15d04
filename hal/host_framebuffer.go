//go:build !tinygo

package hal

import (
	"fmt"
	"sync"
)

type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	buf      []uint32
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &hostFramebuffer{
		width:  width,
		height: height,
		buf:    make([]uint32, width*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB888 }

func (f *hostFramebuffer) Present(pix []uint32) error {
	if len(pix) != len(f.buf) {
		return fmt.Errorf("%w: got %d pixels, want %dx%d", ErrFrameSize, len(pix), f.width, f.height)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.buf, pix)
	f.presents++
	return nil
}

// snapshotRGBA converts the last presented frame into dst (4 bytes per
// pixel) and reports how many frames have been presented so far.
func (f *hostFramebuffer) snapshotRGBA(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	packedToRGBA(dst, f.buf)
	return f.presents
}
