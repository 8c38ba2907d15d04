// Command orrshot renders orrery frames offline and writes them as PNG files.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"

	"orrery/core/compose"
	"orrery/core/hud"
	"orrery/core/raster"
	"orrery/core/scene"
	"orrery/internal/buildinfo"
	"orrery/internal/config"
)

type options struct {
	out    string
	times  []float32
	cam    scene.Camera
	width  int
	height int
	hud    bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatalf("config: %v", err)
	}

	var (
		outPath = flag.String("out", "orrery.png", "Output file; use %d in the name to number frames.")
		times   = flag.String("t", "0", "Comma-separated simulation times to render.")
		camX    = flag.Float64("x", 0, "Camera X.")
		camZ    = flag.Float64("z", 0, "Camera Z.")
		zoom    = flag.Float64("zoom", 1, "Camera zoom (clamped).")
		width   = flag.Int("width", cfg.Window.Width, "Image width.")
		height  = flag.Int("height", cfg.Window.Height, "Image height.")
		withHUD = flag.Bool("hud", false, "Draw the text overlay.")
	)
	flag.Parse()

	ts, err := parseTimes(*times)
	if err != nil {
		fatalf("usage: orrshot -out frame%%d.png -t 0,1.5,3 [-x 0 -z 0 -zoom 1] [-width 800 -height 600]\n%v", err)
	}
	opts := options{
		out:    *outPath,
		times:  ts,
		cam:    scene.Camera{Position: scene.Vec2{X: float32(*camX), Z: float32(*camZ)}, Zoom: float32(*zoom)},
		width:  *width,
		height: *height,
		hud:    *withHUD,
	}
	written, err := render(opts, scene.DefaultBodies())
	if err != nil {
		fatalf("render: %v", err)
	}
	for _, p := range written {
		fmt.Println(p)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func parseTimes(s string) ([]float32, error) {
	var out []float32
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return nil, fmt.Errorf("bad time %q: %w", part, err)
		}
		out = append(out, float32(v))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no times given")
	}
	return out, nil
}

// framePath numbers the output when more than one frame is rendered.
func framePath(pattern string, i, n int) string {
	if strings.Contains(pattern, "%d") {
		return fmt.Sprintf(pattern, i)
	}
	if n == 1 {
		return pattern
	}
	ext := ".png"
	base := strings.TrimSuffix(pattern, ext)
	return fmt.Sprintf("%s-%03d%s", base, i, ext)
}

func render(opts options, bodies []scene.Body) ([]string, error) {
	if opts.width <= 0 || opts.height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}
	if err := scene.Validate(bodies); err != nil {
		return nil, err
	}

	var written []string
	var path string
	c := compose.New(opts.width, opts.height, compose.SinkFunc(func(fb *raster.Framebuffer) error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, fb.RGBA()); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}))
	if opts.hud {
		c.AddOverlay(hud.New(buildinfo.Title()))
	}

	for i, t := range opts.times {
		path = framePath(opts.out, i, len(opts.times))
		if err := c.Frame(bodies, opts.cam, t); err != nil {
			return written, fmt.Errorf("frame %d (t=%v): %w", i, t, err)
		}
		written = append(written, path)
	}
	return written, nil
}
