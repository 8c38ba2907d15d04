package compose

import (
	"errors"
	"math"
	"testing"

	"orrery/core/raster"
	"orrery/core/scene"
)

type captureSink struct {
	calls int
	last  *raster.Framebuffer
	err   error
}

func (s *captureSink) Present(fb *raster.Framebuffer) error {
	s.calls++
	s.last = fb
	return s.err
}

func sunAndEarth() []scene.Body {
	return []scene.Body{
		{Name: "Sun", Radius: 30, Color: 0xFFCC33, Central: true},
		{Name: "Earth", Radius: 11, Distance: 380, OrbitSpeed: 0.03, SpinSpeed: 0.12, Color: 0x3366FF},
	}
}

func pixelAt(fb *raster.Framebuffer, x, y float32) raster.Color {
	return fb.At(int(math.Round(float64(x))), int(math.Round(float64(y))))
}

func TestFrameSunAndEarth(t *testing.T) {
	sink := &captureSink{}
	c := New(800, 600, sink)
	if err := c.Frame(sunAndEarth(), scene.DefaultCamera(), 0); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if sink.calls != 1 || sink.last != c.Framebuffer() {
		t.Fatalf("sink calls = %d, want 1 with the composer buffer", sink.calls)
	}

	fb := sink.last
	if got := fb.At(400, 300); got != 0xFFCC33 {
		t.Fatalf("sun center = %#06x, want 0xffcc33", uint32(got))
	}
	// n=(0,0,1), l=(-1,0,0.4): base 0.55, speckle 0.7 → 0.385.
	if got, want := fb.At(780, 300), raster.RGB(19, 39, 98); got != want {
		t.Fatalf("earth center = %#06x, want %#06x", uint32(got), uint32(want))
	}
	if got := fb.At(780, 300); got == raster.Color(0x3366FF).Shade(raster.Ambient) {
		t.Fatalf("earth center is ambient only, want the lz contribution")
	}
}

func TestFrameCentralBodyUnshaded(t *testing.T) {
	cams := []scene.Camera{
		scene.DefaultCamera(),
		{Position: scene.Vec2{X: 100, Z: -50}, Zoom: 2.5},
		{Position: scene.Vec2{X: -200, Z: 80}, Zoom: 0.3},
		{Position: scene.Vec2{X: 40, Z: 40}, Zoom: 10},
		{Position: scene.Vec2{X: -100, Z: 20}, Zoom: 0.01},
	}
	c := New(800, 600, nil)
	for i, cam := range cams {
		for _, tm := range []float32{0, 7.5, 1200} {
			if err := c.Frame(sunAndEarth(), cam, tm); err != nil {
				t.Fatalf("Frame() = %v", err)
			}
			p := scene.NewProjector(800, 600, cam)
			x, y := p.Project(scene.Vec2{})
			if got := pixelAt(c.Framebuffer(), x, y); got != 0xFFCC33 {
				t.Fatalf("camera %d t=%v: sun center (%v,%v) = %#06x, want 0xffcc33", i, tm, x, y, uint32(got))
			}
		}
	}
}

func TestFrameRingOnlyWhenFlagged(t *testing.T) {
	saturn := scene.Body{Name: "Saturn", Radius: 16, Distance: 200, Color: 0xEEDD99}
	sun := scene.Body{Name: "Sun", Radius: 30, Color: 0xFFCC33, Central: true}

	c := New(800, 600, nil)
	if err := c.Frame([]scene.Body{sun, saturn}, scene.DefaultCamera(), 0); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if got := c.Framebuffer().At(628, 300); got == raster.RingColor {
		t.Fatal("ring drawn for a body without Ring")
	}

	saturn.Ring = true
	if err := c.Frame([]scene.Body{sun, saturn}, scene.DefaultCamera(), 0); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if got := c.Framebuffer().At(628, 300); got != raster.RingColor {
		t.Fatalf("ring pixel = %#06x, want ring color", uint32(got))
	}

	// At zoom 2 the ring scales with the body: 1.75r moves from 28 to 56 px.
	cam := scene.Camera{Position: scene.Vec2{X: 200}, Zoom: 2}
	if err := c.Frame([]scene.Body{sun, saturn}, cam, 0); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	fb := c.Framebuffer()
	if got := fb.At(456, 300); got != raster.RingColor {
		t.Fatalf("zoomed ring pixel = %#06x, want ring color", uint32(got))
	}
	if got := fb.At(428, 300); got == raster.RingColor {
		t.Fatal("ring drawn inside the zoomed body")
	}
}

func TestFrameShipIgnoresCamera(t *testing.T) {
	mask := raster.NewFramebuffer(800, 600)
	raster.DrawShip(mask)

	c := New(800, 600, nil)
	var ref []uint32
	frames := []struct {
		cam scene.Camera
		t   float32
	}{
		{scene.DefaultCamera(), 0},
		{scene.Camera{Position: scene.Vec2{X: 300, Z: -20}, Zoom: 0.5}, 50},
		{scene.Camera{Position: scene.Vec2{X: -900, Z: 900}, Zoom: 3}, 999},
	}
	for i, f := range frames {
		if err := c.Frame(scene.DefaultBodies(), f.cam, f.t); err != nil {
			t.Fatalf("Frame() = %v", err)
		}
		var got []uint32
		for j, p := range mask.Pix() {
			if p != 0 {
				got = append(got, c.Framebuffer().Pix()[j])
			}
		}
		if i == 0 {
			ref = got
			continue
		}
		for j := range ref {
			if got[j] != ref[j] {
				t.Fatalf("frame %d: ship pixel %d = %#06x, want %#06x", i, j, got[j], ref[j])
			}
		}
	}
	if len(ref) == 0 {
		t.Fatal("ship mask is empty")
	}
}

func TestFrameSinkError(t *testing.T) {
	boom := errors.New("display lost")
	c := New(64, 64, &captureSink{err: boom})
	if err := c.Frame(sunAndEarth(), scene.DefaultCamera(), 0); !errors.Is(err, boom) {
		t.Fatalf("Frame() = %v, want %v", err, boom)
	}
}

func TestFrameSkipsInvalidBodies(t *testing.T) {
	bodies := []scene.Body{
		{Name: "Sun", Radius: 30, Color: 0xFFCC33, Central: true},
		{Name: "Flat", Radius: 0, Distance: 100, Color: 0xFF0000},
		{Name: "Lost", Radius: 5, Distance: float32(math.NaN()), Color: 0x00FF00},
		{Name: "Mars", Radius: 9, Distance: 150, Color: 0xCC5533},
	}
	c := New(400, 400, nil)
	if err := c.Frame(bodies, scene.DefaultCamera(), 0); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	fb := c.Framebuffer()
	for _, p := range fb.Pix() {
		if p == 0xFF0000 || p == 0x00FF00 {
			t.Fatalf("invalid body drew pixel %#06x", p)
		}
	}
	if fb.At(350, 200) == Background {
		t.Fatal("valid body after invalid ones not drawn")
	}
}

func TestFramePainterOrder(t *testing.T) {
	bodies := []scene.Body{
		{Name: "Sun", Radius: 30, Color: 0xFFCC33, Central: true},
		{Name: "Moon", Radius: 10, Color: 0xFFFFFF},
	}
	c := New(200, 200, nil)
	if err := c.Frame(bodies, scene.DefaultCamera(), 0); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if got := c.Framebuffer().At(100, 100); got == 0xFFCC33 {
		t.Fatal("later body did not overwrite the earlier one")
	}
	if got := c.Framebuffer().At(100, 75); got != 0xFFCC33 {
		t.Fatalf("sun outside the moon = %#06x, want 0xffcc33", uint32(got))
	}
}

func TestFrameWithoutCentralBody(t *testing.T) {
	bodies := []scene.Body{{Name: "Rogue", Radius: 20, Distance: 50, Color: 0xFFFFFF}}
	c := New(200, 200, nil)
	if err := c.Frame(bodies, scene.DefaultCamera(), 0); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if c.Framebuffer().At(150, 100) == Background {
		t.Fatal("body not drawn without a light source")
	}
}

type recordOverlay struct {
	info  FrameInfo
	calls int
}

func (o *recordOverlay) Draw(t raster.Target, f FrameInfo) {
	o.calls++
	o.info = f
	t.Set(0, 0, 0xABCDEF)
}

func TestFrameOverlays(t *testing.T) {
	o := &recordOverlay{}
	c := New(100, 100, nil)
	c.AddOverlay(nil)
	c.AddOverlay(o)
	if err := c.Frame(sunAndEarth(), scene.Camera{Zoom: 9}, 4); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if o.calls != 1 {
		t.Fatalf("overlay calls = %d, want 1", o.calls)
	}
	if o.info.Camera.Zoom != scene.MaxZoom || o.info.Time != 4 || o.info.Bodies != 2 {
		t.Fatalf("overlay info = %+v", o.info)
	}
	if c.Framebuffer().At(0, 0) != 0xABCDEF {
		t.Fatal("overlay pixel not kept")
	}
}

func TestLightSource(t *testing.T) {
	p := scene.NewProjector(800, 600, scene.Camera{Position: scene.Vec2{X: 50}, Zoom: 2})
	for _, tm := range []float32{0, 50, 1234.5} {
		if x, y := LightSource(sunAndEarth(), p, tm); x != 300 || y != 300 {
			t.Fatalf("LightSource(t=%v) = %v,%v, want 300,300", tm, x, y)
		}
	}
	if x, y := LightSource(nil, p, 10); x != 400 || y != 300 {
		t.Fatalf("LightSource(nil) = %v,%v, want 400,300", x, y)
	}
}
