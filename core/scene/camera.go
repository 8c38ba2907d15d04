package scene

// Zoom limits. Zoom is clamped into [MinZoom, MaxZoom] before every use.
const (
	MinZoom float32 = 0.3
	MaxZoom float32 = 3.0
)

// Camera is the top-down view: a position in the orbital plane and a zoom.
type Camera struct {
	Position Vec2
	Zoom     float32
}

// DefaultCamera looks at the origin at zoom 1.
func DefaultCamera() Camera { return Camera{Zoom: 1} }

// ClampZoom clamps z into [MinZoom, MaxZoom]. NaN maps to 1.
func ClampZoom(z float32) float32 {
	if z != z {
		return 1
	}
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// Clamped returns c with its zoom clamped. Position is not validated.
func (c Camera) Clamped() Camera {
	c.Zoom = ClampZoom(c.Zoom)
	return c
}
