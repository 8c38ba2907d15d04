package raster

import "math"

const (
	// Ambient is the intensity floor on the unlit side of a body.
	Ambient float32 = 0.25
	// LightZ is the fixed out-of-plane component of every light direction.
	LightZ float32 = 0.4

	lightEpsilon float32 = 1e-4
)

// Surface selects the procedural pattern applied to a sphere.
type Surface uint8

const (
	// SurfaceSpeckled is the irregular pattern of small rocky bodies.
	SurfaceSpeckled Surface = iota
	// SurfaceBanded is the latitude/longitude band pattern of large bodies.
	SurfaceBanded
	// SurfaceEmissive draws the stored color unshaded (light sources).
	SurfaceEmissive
)

func (s Surface) String() string {
	switch s {
	case SurfaceBanded:
		return "banded"
	case SurfaceEmissive:
		return "emissive"
	default:
		return "speckled"
	}
}

// Sphere is one body disc in screen space.
type Sphere struct {
	X, Y    float32 // center
	Radius  float32 // on-screen radius
	Color   Color
	Surface Surface
	Phase   float32 // rotation phase fed into the surface pattern
}

// LightDir returns the light direction for a body centered at (cx, cy) lit
// from (lx, ly). The in-plane part is normalized with an epsilon floor on its
// length; the z component is always LightZ.
func LightDir(cx, cy, lx, ly float32) (x, y, z float32) {
	x = lx - cx
	y = ly - cy
	l := sqrtF(x*x + y*y)
	if !(l > lightEpsilon) {
		l = lightEpsilon
	}
	return x / l, y / l, LightZ
}

// Lambert returns ambient + (1-ambient)*max(0, n·l).
func Lambert(nx, ny, nz, lx, ly, lz float32) float32 {
	dot := nx*lx + ny*ly + nz*lz
	if !(dot > 0) {
		dot = 0
	}
	return Ambient + (1-Ambient)*dot
}

// BandPattern is the banded surface factor in [0.6, 1].
func BandPattern(longitude, latitude float32) float32 {
	v := sinF(latitude*6+longitude*2)*0.5 + 0.5
	return 0.6 + 0.4*v
}

// SpecklePattern is the speckled surface factor in [0.7, 1].
func SpecklePattern(nx, nz, phase float32) float32 {
	v := sinF(nx*8+phase) * cosF(nz*8)
	if v < 0 {
		v = -v
	}
	return 0.7 + 0.3*v
}

// DrawSphere rasterizes s as the front hemisphere of a unit sphere viewed
// orthographically, lit from the screen point (lx, ly).
//
// A non-positive or NaN radius draws nothing.
func DrawSphere(t Target, s Sphere, lx, ly float32) {
	r := s.Radius
	if !(r > 0) || math.IsInf(float64(r), 0) {
		return
	}
	cx, cy := s.X, s.Y
	if cx != cx || cy != cy {
		return
	}

	w, h := t.Size()
	minX, maxX, okX := span(cx-r, cx+r, w)
	minY, maxY, okY := span(cy-r, cy+r, h)
	if !okX || !okY {
		return
	}

	ldx, ldy, ldz := LightDir(cx, cy, lx, ly)
	r2 := r * r

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float32(x) - cx
			dy := float32(y) - cy
			if dx*dx+dy*dy > r2 {
				continue
			}

			nx := dx / r
			ny := dy / r
			nz2 := 1 - nx*nx - ny*ny
			if nz2 <= 0 {
				continue
			}

			if s.Surface == SurfaceEmissive {
				t.Set(x, y, s.Color)
				continue
			}
			nz := sqrtF(nz2)

			var pattern float32
			switch s.Surface {
			case SurfaceBanded:
				long := float32(math.Atan2(float64(dy), float64(dx))) + s.Phase
				pattern = BandPattern(long, ny)
			default:
				pattern = SpecklePattern(nx, nz, s.Phase)
			}

			base := Lambert(nx, ny, nz, ldx, ldy, ldz)
			t.Set(x, y, s.Color.Shade(base*pattern))
		}
	}
}
