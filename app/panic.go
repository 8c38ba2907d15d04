package app

import (
	"errors"
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"orrery/core/raster"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// ErrPanic wraps a panic recovered while stepping a frame.
var ErrPanic = errors.New("app: panic in frame")

// recoverFrame turns a panic into ErrPanic. It logs the stack and tries to
// leave a crash screen in the window before the runner exits.
func (s *system) recoverFrame(err *error) {
	v := recover()
	if v == nil {
		return
	}
	stack := debug.Stack()
	s.log.Error("panic in frame", "frame", s.frames, "panic", fmt.Sprint(v))
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			s.log.Error(line)
		}
	}

	*err = fmt.Errorf("%w: %v", ErrPanic, v)
	s.drawCrashScreen(v, stack)
}

func (s *system) drawCrashScreen(v any, stack []byte) {
	defer func() { recover() }()

	fb := s.comp.Framebuffer()
	fb.Clear(raster.RGB(0xFF, 0xFF, 0xFF))

	lines := []string{
		"Orrery panic:",
		fmt.Sprintf("frame: %d", s.frames),
		fmt.Sprintf("panic: %v", v),
		"stack:",
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	}

	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int(outboxWidth)
	const fontHeight = 11
	if fontWidth <= 0 {
		fontWidth = 6
	}

	w, h := fb.Size()
	cols := w / fontWidth
	if cols <= 0 {
		cols = 1
	}
	d := crashDisplay{fb: fb}
	fg := color.RGBA{A: 0xFF}

	y := fontHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > h {
				s.presentCrash(fb)
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 2, int16(y), chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	s.presentCrash(fb)
}

func (s *system) presentCrash(fb *raster.Framebuffer) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Present(fb); err != nil {
		s.log.Error("present crash screen", "error", err)
	}
}

type crashDisplay struct {
	fb *raster.Framebuffer
}

func (d crashDisplay) Size() (x, y int16) {
	w, h := d.fb.Size()
	return int16(w), int16(h)
}

func (d crashDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.Set(int(x), int(y), raster.FromRGBA(c))
}

func (d crashDisplay) Display() error { return nil }

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
