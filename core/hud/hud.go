// Package hud draws the text overlay (title, controls, camera readout) with
// tinyfont on top of a finished frame.
package hud

import (
	"fmt"
	"image/color"

	"orrery/core/compose"
	"orrery/core/raster"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const controlsLine = "WASD move  Q/E zoom  T focus  R reset  Esc quit"

var (
	titleColor = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	dimColor   = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
	focusColor = color.RGBA{R: 0xFF, G: 0xD0, B: 0x60, A: 0xFF}
)

// HUD is a compose.Overlay. Focus is the name of the body the camera was
// last moved to; empty hides the line.
type HUD struct {
	Title string
	Focus string

	font       tinyfont.Fonter
	lineHeight int16
}

func New(title string) *HUD {
	return &HUD{
		Title:      title,
		font:       &proggy.TinySZ8pt7b,
		lineHeight: 11,
	}
}

func (h *HUD) Draw(t raster.Target, f compose.FrameInfo) {
	if h == nil || t == nil {
		return
	}
	d := &displayer{t: t}

	y := int16(4) + h.lineHeight
	if h.Title != "" {
		tinyfont.WriteLine(d, h.font, 6, y, h.Title, titleColor)
		y += h.lineHeight
	}
	tinyfont.WriteLine(d, h.font, 6, y, controlsLine, dimColor)
	y += h.lineHeight

	status := fmt.Sprintf("zoom %.2f  cam %.0f,%.0f  t %.2f", f.Camera.Zoom, f.Camera.Position.X, f.Camera.Position.Z, f.Time)
	tinyfont.WriteLine(d, h.font, 6, y, status, dimColor)
	y += h.lineHeight

	if h.Focus != "" {
		tinyfont.WriteLine(d, h.font, 6, y, "focus: "+h.Focus, focusColor)
	}
}

// displayer lets tinyfont draw into a raster.Target.
type displayer struct {
	t raster.Target
}

var _ drivers.Displayer = (*displayer)(nil)

func (d *displayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *displayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.Set(int(x), int(y), raster.FromRGBA(c))
}

func (d *displayer) Display() error { return nil }
