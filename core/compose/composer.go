// Package compose turns one frame's inputs into a finished framebuffer.
package compose

import (
	"orrery/core/raster"
	"orrery/core/scene"
)

// Background is the clear color of every frame.
const Background raster.Color = 0x000000

// Sink receives each finished frame exactly once. The buffer is only valid
// for the duration of the call.
type Sink interface {
	Present(fb *raster.Framebuffer) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(fb *raster.Framebuffer) error

func (f SinkFunc) Present(fb *raster.Framebuffer) error { return f(fb) }

// FrameInfo describes the frame an overlay is drawn into.
type FrameInfo struct {
	Camera scene.Camera // zoom already clamped
	Time   float32
	Bodies int
}

// Overlay draws on top of the scene after the ship sprite.
type Overlay interface {
	Draw(t raster.Target, f FrameInfo)
}

// Composer renders frames into a buffer it owns and hands them to a sink.
// It keeps nothing from one frame to the next.
type Composer struct {
	fb       *raster.Framebuffer
	sink     Sink
	overlays []Overlay
}

// New allocates a w×h composer presenting to sink. A nil sink discards frames.
func New(w, h int, sink Sink) *Composer {
	return &Composer{
		fb:   raster.NewFramebuffer(w, h),
		sink: sink,
	}
}

// AddOverlay appends an overlay; overlays draw in registration order.
func (c *Composer) AddOverlay(o Overlay) {
	if o == nil {
		return
	}
	c.overlays = append(c.overlays, o)
}

// Framebuffer returns the buffer the last frame was drawn into.
func (c *Composer) Framebuffer() *raster.Framebuffer { return c.fb }

// LightSource returns the screen position of the central body at time t, or
// the viewport center when there is none.
func LightSource(bodies []scene.Body, p scene.Projector, t float32) (x, y float32) {
	if i := scene.Central(bodies); i >= 0 {
		return p.Project(bodies[i].Position(t))
	}
	return p.Center()
}

// Frame renders bodies as seen by cam at time t and presents the result.
// Bodies draw in input order; invalid bodies are skipped. The only error is
// the sink's.
func (c *Composer) Frame(bodies []scene.Body, cam scene.Camera, t float32) error {
	fb := c.fb
	w, h := fb.Size()
	cam = cam.Clamped()
	p := scene.NewProjector(w, h, cam)

	fb.Clear(Background)
	raster.DrawStarfield(fb)

	lx, ly := LightSource(bodies, p, t)
	for i := range bodies {
		b := &bodies[i]
		if b.Central || b.Validate() != nil {
			continue
		}
		raster.DrawOrbit(fb, lx, ly, p.Scale(b.Distance), raster.OrbitColor)
	}

	for i := range bodies {
		b := &bodies[i]
		if b.Validate() != nil {
			continue
		}
		x, y := p.Project(b.Position(t))
		r := p.Scale(b.Radius)
		raster.DrawSphere(fb, raster.Sphere{
			X:       x,
			Y:       y,
			Radius:  r,
			Color:   b.Color,
			Surface: b.Surface(),
			Phase:   b.Phase(t),
		}, lx, ly)
		if b.Ring {
			inner, outer := raster.RingRadii(r)
			raster.DrawRing(fb, x, y, inner, outer, raster.RingColor)
		}
	}

	raster.DrawShip(fb)

	info := FrameInfo{Camera: cam, Time: t, Bodies: len(bodies)}
	for _, o := range c.overlays {
		o.Draw(fb, info)
	}

	if c.sink == nil {
		return nil
	}
	return c.sink.Present(fb)
}
