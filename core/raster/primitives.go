package raster

import "math"

// Shader returns the color for a covered pixel.
type Shader func(x, y int) Color

// Flat returns a shader that always yields c.
func Flat(c Color) Shader { return func(int, int) Color { return c } }

// DrawLine draws a 1px Bresenham line including both endpoints.
func DrawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillRect fills the half-open rectangle [x, x+w) × [y, y+h).
func FillRect(t Target, x, y, w, h int, sh Shader) {
	if w <= 0 || h <= 0 || sh == nil {
		return
	}
	tw, th := t.Size()
	x0, y0 := maxInt(x, 0), maxInt(y, 0)
	x1, y1 := minInt(x+w, tw), minInt(y+h, th)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			t.Set(px, py, sh(px, py))
		}
	}
}

// FillCircle fills every integer pixel within r of (cx, cy).
func FillCircle(t Target, cx, cy int, r float32, sh Shader) {
	if !(r > 0) || sh == nil {
		return
	}
	r2 := r * r
	ir := int(math.Ceil(float64(r)))
	for y := cy - ir; y <= cy+ir; y++ {
		for x := cx - ir; x <= cx+ir; x++ {
			dx := float32(x - cx)
			dy := float32(y - cy)
			if dx*dx+dy*dy > r2 {
				continue
			}
			t.Set(x, y, sh(x, y))
		}
	}
}

// FillTriangle fills a triangle with either winding using edge functions.
// Pixels on an edge are covered.
func FillTriangle(t Target, x0, y0, x1, y1, x2, y2 int, sh Shader) {
	if sh == nil {
		return
	}
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	w, h := t.Size()
	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			t.Set(x, y, sh(x, y))
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sinF(v float32) float32  { return float32(math.Sin(float64(v))) }
func cosF(v float32) float32  { return float32(math.Cos(float64(v))) }
func sqrtF(v float32) float32 { return float32(math.Sqrt(float64(v))) }

func floorInt(v float32) int { return int(math.Floor(float64(v))) }
func ceilInt(v float32) int  { return int(math.Ceil(float64(v))) }

// span clips the float interval [lo, hi] to pixel indices [0, n-1] before
// converting, so huge or infinite bounds never reach an int conversion.
func span(lo, hi float32, n int) (a, b int, ok bool) {
	if n <= 0 || !(hi >= 0) || !(lo < float32(n)) {
		return 0, 0, false
	}
	if lo < 0 {
		lo = 0
	}
	if last := float32(n - 1); hi > last {
		hi = last
	}
	return floorInt(lo), ceilInt(hi), true
}
