// Package scene holds the orbital model: bodies, the camera and the
// world-to-screen projection.
package scene

import (
	"errors"
	"fmt"
	"math"

	"orrery/core/raster"
)

// LargeBodyRadius is the unscaled radius from which bodies get the banded
// surface instead of the speckled one.
const LargeBodyRadius float32 = 16

var (
	ErrInvalidRadius   = errors.New("radius must be a finite value > 0")
	ErrInvalidDistance = errors.New("distance must be a finite value >= 0")
	ErrCentralOffset   = errors.New("central body must sit at distance 0")
	ErrNoCentral       = errors.New("no central body")
	ErrMultipleCentral = errors.New("more than one central body")
)

// Vec2 is a point in the orbital plane (world X/Z).
type Vec2 struct {
	X, Z float32
}

// Body is one orbiting (or the central) body. Bodies are immutable per frame.
type Body struct {
	Name       string // display only
	Radius     float32
	Distance   float32 // from the central body
	OrbitSpeed float32 // rad per time unit
	SpinSpeed  float32 // rad per time unit
	Color      raster.Color
	Central    bool
	Ring       bool
}

// Validate reports whether b can be rasterized.
func (b Body) Validate() error {
	if !finite(b.Radius) || !(b.Radius > 0) {
		return ErrInvalidRadius
	}
	if !finite(b.Distance) || b.Distance < 0 {
		return ErrInvalidDistance
	}
	if b.Central && b.Distance != 0 {
		return ErrCentralOffset
	}
	return nil
}

// Position returns the world position at time t. The central body never
// moves.
func (b Body) Position(t float32) Vec2 {
	if b.Central {
		return Vec2{}
	}
	angle := float64(t * b.OrbitSpeed)
	return Vec2{
		X: b.Distance * float32(math.Cos(angle)),
		Z: b.Distance * float32(math.Sin(angle)),
	}
}

// Phase is the rotation phase at time t, used only by surface patterns.
func (b Body) Phase(t float32) float32 { return t * b.SpinSpeed }

// Surface classifies the body for the sphere rasterizer.
func (b Body) Surface() raster.Surface {
	switch {
	case b.Central:
		return raster.SurfaceEmissive
	case b.Radius >= LargeBodyRadius:
		return raster.SurfaceBanded
	default:
		return raster.SurfaceSpeckled
	}
}

// Validate checks every body and that exactly one is central.
func Validate(bodies []Body) error {
	central := 0
	for i, b := range bodies {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("body %d (%q): %w", i, b.Name, err)
		}
		if b.Central {
			central++
		}
	}
	switch {
	case central == 0:
		return ErrNoCentral
	case central > 1:
		return ErrMultipleCentral
	}
	return nil
}

// Central returns the index of the first central body, or -1.
func Central(bodies []Body) int {
	for i := range bodies {
		if bodies[i].Central {
			return i
		}
	}
	return -1
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
