package raster

const (
	RingInnerRatio float32 = 1.6
	RingOuterRatio float32 = 1.9
)

// RingColor is the flat color of every ring.
const RingColor Color = 0xC8B090

// RingRadii derives ring radii from a body's on-screen radius.
func RingRadii(r float32) (inner, outer float32) {
	return r * RingInnerRatio, r * RingOuterRatio
}

// DrawRing fills the annulus inner² ≤ d² ≤ outer² around (cx, cy).
func DrawRing(t Target, cx, cy, inner, outer float32, c Color) {
	if !(outer > 0) || !(inner >= 0) || inner > outer {
		return
	}
	if cx != cx || cy != cy {
		return
	}
	inner2 := inner * inner
	outer2 := outer * outer

	w, h := t.Size()
	minX, maxX, okX := span(cx-outer, cx+outer, w)
	minY, maxY, okY := span(cy-outer, cy+outer, h)
	if !okX || !okY {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float32(x) - cx
			dy := float32(y) - cy
			d2 := dx*dx + dy*dy
			if d2 < inner2 || d2 > outer2 {
				continue
			}
			t.Set(x, y, c)
		}
	}
}
