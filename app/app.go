package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orrery/core/compose"
	"orrery/core/hud"
	"orrery/core/raster"
	"orrery/core/scene"
	"orrery/hal"
	"orrery/internal/buildinfo"
	"orrery/internal/logging"
)

// ErrNoDisplay is returned when the HAL has no framebuffer to present to.
var ErrNoDisplay = errors.New("app: no framebuffer")

type Config struct {
	// Bodies is the catalog to animate; nil uses scene.DefaultBodies.
	Bodies []scene.Body
	// TimeStep is added to the simulation clock every frame.
	TimeStep float32
	HUD      bool
	// StatsEvery logs frame statistics every N frames at DEBUG; 0 disables.
	StatsEvery int
	LogLevel   slog.Level
	// Log overrides the logger built on the HAL line logger.
	Log *slog.Logger
}

type system struct {
	log      *slog.Logger
	bodies   []scene.Body
	timeStep float32

	cam    scene.Camera
	motion scene.Motion
	held   map[hal.KeyCode]bool
	t      float32
	focus  int

	comp  *compose.Composer
	sink  compose.Sink
	hud   *hud.HUD
	keys  <-chan hal.KeyEvent
	clock hal.Clock

	frames     uint64
	statsEvery int
	lastStats  time.Duration
	lastFrames uint64
}

// New validates the catalog and returns the per-frame step function.
func New(h hal.HAL, cfg Config) (func() error, error) {
	s, err := newSystem(h, cfg)
	if err != nil {
		return nil, err
	}
	return s.step, nil
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	log := cfg.Log
	if log == nil {
		if l := h.Logger(); l != nil {
			log = logging.New(logging.NewLineWriter(l), cfg.LogLevel)
		} else {
			log = logging.Discard()
		}
	}

	bodies := cfg.Bodies
	if bodies == nil {
		bodies = scene.DefaultBodies()
	}
	if err := scene.Validate(bodies); err != nil {
		return nil, logging.WrapError(err, "invalid catalog")
	}

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, ErrNoDisplay
	}

	s := &system{
		log:        log,
		bodies:     bodies,
		timeStep:   cfg.TimeStep,
		cam:        scene.DefaultCamera(),
		held:       make(map[hal.KeyCode]bool),
		focus:      -1,
		clock:      h.Clock(),
		statsEvery: cfg.StatsEvery,
	}
	s.sink = compose.SinkFunc(func(f *raster.Framebuffer) error {
		return fb.Present(f.Pix())
	})
	s.comp = compose.New(fb.Width(), fb.Height(), s.sink)
	if cfg.HUD {
		s.hud = hud.New(buildinfo.Title())
		s.comp.AddOverlay(s.hud)
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
	}

	log.Info("orrery started",
		"build", buildinfo.String(),
		"width", fb.Width(),
		"height", fb.Height(),
		"bodies", len(bodies),
		"time_step", cfg.TimeStep,
		"hud", cfg.HUD,
	)
	return s, nil
}

func (s *system) step() (err error) {
	defer s.recoverFrame(&err)

	if err := s.drainKeys(); err != nil {
		return err
	}

	s.cam, s.motion = scene.StepCamera(s.cam, s.motion, s.input())
	s.t += s.timeStep

	if err := s.comp.Frame(s.bodies, s.cam, s.t); err != nil {
		return logging.WrapError(err, "frame %d", s.frames)
	}
	s.frames++
	s.logStats()
	return nil
}

func (s *system) drainKeys() error {
	if s.keys == nil {
		return nil
	}
	for {
		select {
		case ev, ok := <-s.keys:
			if !ok {
				s.keys = nil
				return nil
			}
			if err := s.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *system) handleKey(ev hal.KeyEvent) error {
	s.held[ev.Code] = ev.Press
	if !ev.Press {
		return nil
	}
	switch ev.Code {
	case hal.KeyEscape:
		s.log.Info("exit requested", "frames", s.frames)
		return hal.ErrExit
	case hal.KeyT:
		s.focusNext()
	case hal.KeyR:
		s.cam, s.motion = scene.DefaultCamera(), scene.Motion{}
		s.focus = -1
		s.setFocusName("")
		s.log.Debug("camera reset")
	}
	return nil
}

// focusNext jumps the camera to the next non-central body, wrapping around.
func (s *system) focusNext() {
	n := len(s.bodies)
	for i := 1; i <= n; i++ {
		idx := (s.focus + i) % n
		if idx < 0 {
			idx += n
		}
		b := s.bodies[idx]
		if b.Central {
			continue
		}
		s.focus = idx
		s.cam, s.motion = scene.Focus(s.cam, b.Position(s.t))
		s.setFocusName(b.Name)
		s.log.Debug("camera focus", "body", b.Name, "x", s.cam.Position.X, "z", s.cam.Position.Z)
		return
	}
}

func (s *system) setFocusName(name string) {
	if s.hud != nil {
		s.hud.Focus = name
	}
}

func (s *system) input() scene.Input {
	return scene.Input{
		Left:    s.held[hal.KeyA] || s.held[hal.KeyLeft],
		Right:   s.held[hal.KeyD] || s.held[hal.KeyRight],
		Forward: s.held[hal.KeyW] || s.held[hal.KeyUp],
		Back:    s.held[hal.KeyS] || s.held[hal.KeyDown],
		ZoomIn:  s.held[hal.KeyQ],
		ZoomOut: s.held[hal.KeyE],
	}
}

func (s *system) logStats() {
	if s.statsEvery <= 0 || s.frames%uint64(s.statsEvery) != 0 {
		return
	}
	var fps float64
	var ticks uint64
	if s.clock != nil {
		ticks = s.clock.Frames()
		now := s.clock.Elapsed()
		if dt := now - s.lastStats; dt > 0 {
			fps = float64(s.frames-s.lastFrames) / dt.Seconds()
		}
		s.lastStats = now
	}
	s.lastFrames = s.frames
	s.log.Debug("frame stats",
		"frames", s.frames,
		"ticks", ticks,
		"fps", fmt.Sprintf("%.1f", fps),
		"t", s.t,
		"zoom", s.cam.Zoom,
	)
}
