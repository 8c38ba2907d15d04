package raster

import (
	"math"
	"testing"
)

func TestDrawOrbitOnCircle(t *testing.T) {
	fb := NewFramebuffer(400, 400)
	DrawOrbit(fb, 200, 200, 150, OrbitColor)

	n := 0
	for y := 0; y < 400; y++ {
		for x := 0; x < 400; x++ {
			if fb.At(x, y) != OrbitColor {
				continue
			}
			n++
			d := math.Hypot(float64(x)-200, float64(y)-200)
			if math.Abs(d-150) > 1.5 {
				t.Fatalf("orbit pixel (%d,%d) at distance %.2f, want ~150", x, y, d)
			}
		}
	}
	if n == 0 || n > OrbitSamples {
		t.Fatalf("orbit pixels = %d, want 1..%d", n, OrbitSamples)
	}
}

func TestDrawOrbitDegenerate(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	DrawOrbit(fb, 5, 5, 0, OrbitColor)
	DrawOrbit(fb, 5, 5, float32(math.NaN()), OrbitColor)
	if n := countColor(fb, OrbitColor); n != 0 {
		t.Fatalf("degenerate orbit drew %d pixels", n)
	}
}
