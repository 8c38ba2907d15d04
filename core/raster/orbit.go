package raster

import "math"

// OrbitSamples is the number of points plotted per orbit outline.
const OrbitSamples = 360

// OrbitColor is the outline color of orbit paths.
const OrbitColor Color = 0x2A2F45

// DrawOrbit plots OrbitSamples points on the circle of the given radius
// around (cx, cy). Samples are not connected, so small radii may show gaps
// and large ones dotted arcs.
func DrawOrbit(t Target, cx, cy, radius float32, c Color) {
	if !(radius > 0) || math.IsInf(float64(radius), 0) {
		return
	}
	if cx != cx || cy != cy {
		return
	}
	step := 2 * math.Pi / OrbitSamples
	for i := 0; i < OrbitSamples; i++ {
		a := float64(i) * step
		x := float64(cx) + math.Cos(a)*float64(radius)
		y := float64(cy) + math.Sin(a)*float64(radius)
		t.Set(int(math.Floor(x)), int(math.Floor(y)), c)
	}
}
