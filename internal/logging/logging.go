// Package logging builds the slog logger used across orrery.
//
// Records are rendered by slog's text handler. On the host they end up on the
// HAL line logger through LineWriter, so every record is one line.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "ORRERY_LOG_LEVEL"

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: sanitizeAttributes,
	})
	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError+4)
}

// ParseLevel maps DEBUG, INFO, WARN (or WARNING) and ERROR, in any case, to a
// slog level. Anything else is INFO and ok is false.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

var sensitiveKeys = []string{
	"password", "passwd", "token", "secret", "auth", "cookie",
}

func sanitizeAttributes(_ []string, a slog.Attr) slog.Attr {
	key := strings.ToLower(a.Key)
	for _, s := range sensitiveKeys {
		if strings.Contains(key, s) {
			return slog.Attr{Key: a.Key, Value: slog.StringValue("[REDACTED]")}
		}
	}
	return a
}

// LineSink receives complete log lines without the trailing newline.
type LineSink interface {
	WriteLineBytes(b []byte)
}

// LineWriter splits whatever is written to it on newlines and forwards each
// complete line to a LineSink. Partial lines are held until the newline
// arrives.
type LineWriter struct {
	mu   sync.Mutex
	sink LineSink
	buf  []byte
}

func NewLineWriter(sink LineSink) *LineWriter {
	return &LineWriter{sink: sink}
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		if w.sink != nil {
			w.sink.WriteLineBytes(w.buf[:i])
		}
		w.buf = w.buf[i+1:]
	}
	if len(w.buf) == 0 {
		w.buf = nil
	}
	return len(p), nil
}

// WrapError adds context to err, formatting it with args when present.
// A nil err stays nil.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
