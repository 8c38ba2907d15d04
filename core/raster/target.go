package raster

import "image"

// Target is a minimal pixel sink for software rendering.
//
// Implementations must drop out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	Set(x, y int, c Color)
	Clear(c Color)
}

// Framebuffer is a fixed-size grid of packed 24-bit pixels.
//
// It is allocated once and overwritten every frame.
type Framebuffer struct {
	w   int
	h   int
	pix []uint32
}

// NewFramebuffer allocates a w×h buffer. Non-positive sizes yield an empty
// buffer that accepts and drops every write.
func NewFramebuffer(w, h int) *Framebuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Framebuffer{w: w, h: h, pix: make([]uint32, w*h)}
}

func (f *Framebuffer) Size() (w, h int) { return f.w, f.h }

// Pix exposes the row-major backing slice. Callers must treat it as read-only.
func (f *Framebuffer) Pix() []uint32 { return f.pix }

func (f *Framebuffer) Clear(c Color) {
	if f == nil || len(f.pix) == 0 {
		return
	}
	// Fill by doubling copies.
	f.pix[0] = uint32(c)
	for n := 1; n < len(f.pix); n *= 2 {
		copy(f.pix[n:], f.pix[:n])
	}
}

func (f *Framebuffer) Set(x, y int, c Color) {
	if f == nil || x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.pix[y*f.w+x] = uint32(c)
}

// At returns the pixel at (x,y), or 0 outside the buffer.
func (f *Framebuffer) At(x, y int) Color {
	if f == nil || x < 0 || y < 0 || x >= f.w || y >= f.h {
		return 0
	}
	return Color(f.pix[y*f.w+x])
}

// RGBA copies the buffer into a new opaque image.
func (f *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	for i, p := range f.pix {
		j := i * 4
		img.Pix[j+0] = uint8(p >> 16)
		img.Pix[j+1] = uint8(p >> 8)
		img.Pix[j+2] = uint8(p)
		img.Pix[j+3] = 0xFF
	}
	return img
}
