package raster

import (
	"math"
	"testing"
)

func TestFillTriangleWinding(t *testing.T) {
	cw := NewFramebuffer(32, 32)
	ccw := NewFramebuffer(32, 32)
	FillTriangle(cw, 4, 4, 28, 8, 10, 26, Flat(0xFFFFFF))
	FillTriangle(ccw, 4, 4, 10, 26, 28, 8, Flat(0xFFFFFF))

	n := 0
	for i := range cw.Pix() {
		if cw.Pix()[i] != ccw.Pix()[i] {
			t.Fatalf("pixel %d differs between windings", i)
		}
		if cw.Pix()[i] != 0 {
			n++
		}
	}
	if n == 0 {
		t.Fatal("triangle drew nothing")
	}
	if cw.At(4, 4) != 0xFFFFFF {
		t.Fatal("vertex pixel not covered")
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	FillTriangle(fb, 1, 1, 5, 5, 9, 9, Flat(0xFFFFFF))
	if n := countColor(fb, 0xFFFFFF); n != 0 {
		t.Fatalf("collinear triangle drew %d pixels", n)
	}
}

func TestFillRectClips(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	FillRect(fb, -5, 8, 20, 20, Flat(0xFF0000))
	if n := countColor(fb, 0xFF0000); n != 20 {
		t.Fatalf("clipped rect = %d pixels, want 20", n)
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	DrawLine(fb, 1, 8, 7, 2, 0x00FF00)
	if fb.At(1, 8) != 0x00FF00 || fb.At(7, 2) != 0x00FF00 {
		t.Fatal("line endpoints not drawn")
	}
	if n := countColor(fb, 0x00FF00); n != 7 {
		t.Fatalf("diagonal line = %d pixels, want 7", n)
	}
}

func TestFillCircle(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	FillCircle(fb, 5, 5, 1, Flat(0x0000FF))
	if n := countColor(fb, 0x0000FF); n != 5 {
		t.Fatalf("unit circle = %d pixels, want 5", n)
	}
}

func TestSpanClipsToTarget(t *testing.T) {
	inf := float32(math.Inf(1))
	tests := []struct {
		lo, hi float32
		n      int
		a, b   int
		ok     bool
	}{
		{2.5, 7.2, 10, 2, 8, true},
		{-5, 3.1, 10, 0, 4, true},
		{-1e19, 1e19, 40, 0, 39, true},
		{-inf, inf, 8, 0, 7, true},
		{-3, -0.5, 10, 0, 0, false},
		{10, 12, 10, 0, 0, false},
		{0, 5, 0, 0, 0, false},
		{float32(math.NaN()), float32(math.NaN()), 10, 0, 0, false},
	}
	for _, tt := range tests {
		a, b, ok := span(tt.lo, tt.hi, tt.n)
		if a != tt.a || b != tt.b || ok != tt.ok {
			t.Fatalf("span(%v, %v, %d) = %d,%d,%v, want %d,%d,%v", tt.lo, tt.hi, tt.n, a, b, ok, tt.a, tt.b, tt.ok)
		}
	}
}
