//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPresentCopiesFrame(t *testing.T) {
	fb := newHostFramebuffer(2, 2)
	if fb.Format() != PixelFormatRGB888 {
		t.Fatalf("Format() = %v, want RGB888", fb.Format())
	}
	frame := []uint32{0xFF0000, 0x00FF00, 0x0000FF, 0x123456}
	if err := fb.Present(frame); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	frame[0] = 0 // must not alias

	dst := make([]byte, 16)
	if n := fb.snapshotRGBA(dst); n != 1 {
		t.Fatalf("presents = %d, want 1", n)
	}
	want := []byte{
		0xFF, 0x00, 0x00, 0xFF,
		0x00, 0xFF, 0x00, 0xFF,
		0x00, 0x00, 0xFF, 0xFF,
		0x12, 0x34, 0x56, 0xFF,
	}
	if !bytes.Equal(dst, want) {
		t.Fatalf("snapshot = % x, want % x", dst, want)
	}
}

func TestPresentRejectsWrongSize(t *testing.T) {
	fb := newHostFramebuffer(3, 2)
	err := fb.Present(make([]uint32, 5))
	if !errors.Is(err, ErrFrameSize) {
		t.Fatalf("Present(5 px) = %v, want ErrFrameSize", err)
	}
}

func TestPackedToRGBAShortDst(t *testing.T) {
	dst := make([]byte, 6)
	packedToRGBA(dst, []uint32{0xAABBCC, 0x112233})
	want := []byte{0xAA, 0xBB, 0xCC, 0xFF, 0, 0}
	if !bytes.Equal(dst, want) {
		t.Fatalf("dst = % x, want % x", dst, want)
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newHost(1, 1, &buf)
	h.Logger().WriteLineString("one")
	h.Logger().WriteLineBytes([]byte("two"))
	if got := buf.String(); got != "one\ntwo\n" {
		t.Fatalf("log = %q", got)
	}
}

func TestRunHeadlessTicks(t *testing.T) {
	h := newHost(4, 4, &bytes.Buffer{})
	steps := 0
	err := runHeadless(context.Background(), h, func(got HAL) (func() error, error) {
		if got.Display().Framebuffer().Width() != 4 {
			t.Fatalf("framebuffer width = %d, want 4", got.Display().Framebuffer().Width())
		}
		return func() error { steps++; return nil }, nil
	}, HeadlessConfig{Width: 4, Height: 4, Hz: -1, Ticks: 5})
	if err != nil {
		t.Fatalf("runHeadless() = %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
	if got := h.Clock().Frames(); got != 5 {
		t.Fatalf("Frames() = %d, want 5", got)
	}
}

func TestRunHeadlessExit(t *testing.T) {
	h := newHost(1, 1, &bytes.Buffer{})
	steps := 0
	err := runHeadless(context.Background(), h, func(HAL) (func() error, error) {
		return func() error {
			steps++
			if steps == 3 {
				return ErrExit
			}
			return nil
		}, nil
	}, HeadlessConfig{Hz: -1})
	if err != nil {
		t.Fatalf("runHeadless() = %v, want nil on ErrExit", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
}

func TestRunHeadlessErrors(t *testing.T) {
	boom := errors.New("boom")

	h := newHost(1, 1, &bytes.Buffer{})
	err := runHeadless(context.Background(), h, func(HAL) (func() error, error) {
		return nil, boom
	}, HeadlessConfig{Hz: -1, Ticks: 1})
	if !errors.Is(err, boom) {
		t.Fatalf("factory error = %v, want boom", err)
	}

	err = runHeadless(context.Background(), h, func(HAL) (func() error, error) {
		return func() error { return boom }, nil
	}, HeadlessConfig{Hz: -1, Ticks: 10})
	if !errors.Is(err, boom) {
		t.Fatalf("step error = %v, want boom", err)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := newHost(1, 1, &bytes.Buffer{})
	err := runHeadless(ctx, h, func(HAL) (func() error, error) {
		return func() error { return nil }, nil
	}, HeadlessConfig{Hz: 60})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("runHeadless() = %v, want context.Canceled", err)
	}
}

func TestRunHeadlessInvalidSize(t *testing.T) {
	err := RunHeadless(context.Background(), func(HAL) (func() error, error) {
		return nil, nil
	}, HeadlessConfig{Width: 0, Height: 10, Ticks: 1})
	if err == nil || !strings.Contains(err.Error(), "invalid headless size") {
		t.Fatalf("RunHeadless(0x10) = %v", err)
	}
}

func TestKeyCodeString(t *testing.T) {
	if KeyEscape.String() != "Escape" || KeyT.String() != "T" || KeyCode(999).String() != "Unknown" {
		t.Fatal("KeyCode.String() mismatch")
	}
}
