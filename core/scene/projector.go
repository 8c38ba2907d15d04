package scene

// Projector maps orbital-plane positions to screen pixels with a fixed
// center-anchored orthographic scale.
type Projector struct {
	halfW, halfH float32
	cam          Camera
}

// NewProjector builds a projector for a w×h viewport. The camera zoom is
// clamped here.
func NewProjector(w, h int, cam Camera) Projector {
	return Projector{
		halfW: float32(w) * 0.5,
		halfH: float32(h) * 0.5,
		cam:   cam.Clamped(),
	}
}

// Zoom is the clamped zoom in use.
func (p Projector) Zoom() float32 { return p.cam.Zoom }

// Project returns the screen coordinate of world point v.
func (p Projector) Project(v Vec2) (x, y float32) {
	x = p.halfW + (v.X-p.cam.Position.X)*p.cam.Zoom
	y = p.halfH + (v.Z-p.cam.Position.Z)*p.cam.Zoom
	return x, y
}

// Scale converts a world length to pixels.
func (p Projector) Scale(l float32) float32 { return l * p.cam.Zoom }

// Center is the viewport center in pixels.
func (p Projector) Center() (x, y float32) { return p.halfW, p.halfH }
