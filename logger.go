package boxplay

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/boxplay/physics"
	"github.com/gogpu/boxplay/sound"
	"github.com/gogpu/boxplay/text"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for boxplay and all its sub-packages.
// By default, boxplay produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to disable logging.
//
// Log levels used by boxplay:
//   - [slog.LevelDebug]: per-run statistics, glyph cache contents
//   - [slog.LevelInfo]: lifecycle events (sandbox ready, stopped)
//   - [slog.LevelWarn]: non-fatal issues (stale handles, audio unavailable)
//
// Example:
//
//	boxplay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	physics.SetLogger(l)
	text.SetLogger(l)
	sound.SetLogger(l)
}

// Logger returns the current logger. Driver packages use it so they share
// the configuration set with SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
