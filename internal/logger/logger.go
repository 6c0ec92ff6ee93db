// Package logger provides the slog handler used for diagnostic output:
// leveled, human-oriented, optionally colorized.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Escape codes for colorizing output.
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[97m"
)

// Options configures a Handler.
type Options struct {
	Level    slog.Leveler
	Colorize bool
}

// Handler is an slog.Handler that writes compact single-line records.
type Handler struct {
	opts  Options
	attrs []slog.Attr
	mu    *sync.Mutex
	out   io.Writer
}

// New creates a Handler writing to w.
func New(w io.Writer, opts *Options) *Handler {
	h := &Handler{mu: &sync.Mutex{}, out: w}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	return h
}

// Setup installs a Handler as the default slog logger.
func Setup(w io.Writer, level slog.Level, colorize bool) {
	handler := New(w, &Options{Level: level, Colorize: colorize})
	slog.SetDefault(slog.New(handler))
}

// Enabled returns true if the logging level is enabled.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// Handle writes the record to the output.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)

	if h.opts.Colorize {
		switch {
		case r.Level >= slog.LevelError:
			buf = append(buf, red...)
		case r.Level >= slog.LevelWarn:
			buf = append(buf, yellow...)
		case r.Level < slog.LevelInfo:
			buf = append(buf, cyan...)
		default:
			buf = append(buf, white...)
		}
	}

	if !r.Time.IsZero() {
		buf = fmt.Appendf(buf, "%s ", r.Time.Format(time.DateTime))
	}
	buf = fmt.Appendf(buf, "%s %s", r.Level, r.Message)

	for _, a := range h.attrs {
		buf = appendAttr(buf, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, a)
		return true
	})

	if h.opts.Colorize {
		buf = append(buf, reset...)
	}
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

// appendAttr appends one key=value pair to the buffer.
func appendAttr(buf []byte, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	return fmt.Appendf(buf, " %s=%q", a.Key, a.Value.String())
}

// WithAttrs returns a new Handler with the attributes added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &h2
}

// WithGroup returns the handler unchanged; grouped attributes are written
// flat.
func (h *Handler) WithGroup(name string) slog.Handler {
	return h
}

// ParseLevel maps a config level string onto an slog.Level.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
