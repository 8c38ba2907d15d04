package raster

import "image/color"

// Color is a packed 24-bit 0xRRGGBB value.
type Color uint32

func RGB(r, g, b uint8) Color { return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b)) }

func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Shade scales every channel by intensity. Intensity is clamped to [0,1] and
// channels are truncated, so Shade(1) is the identity and Shade(0) is black.
func (c Color) Shade(intensity float32) Color {
	i := clampF32(intensity, 0, 1)
	if i != i {
		i = 0
	}
	r, g, b := c.Channels()
	return RGB(
		uint8(float32(r)*i),
		uint8(float32(g)*i),
		uint8(float32(b)*i),
	)
}

// RGBA converts to an opaque color.RGBA for image and font APIs.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// FromRGBA drops alpha.
func FromRGBA(c color.RGBA) Color { return RGB(c.R, c.G, c.B) }
