package rawpix

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building the record entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for rawpix and its sub-packages.
// By default, rawpix produces no log output. Pass nil to restore the
// default silent behavior.
//
// Log levels used by rawpix:
//   - [slog.LevelDebug]: grid dimensions for merge, compress, codec and pipeline steps
//   - [slog.LevelWarn]: non-fatal issues (lossy conversions on encode)
//
// Example:
//
//	rawpix.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by rawpix.
// Sub-packages (codec/, internal/pipeline/) call this to share the same
// configuration without keeping their own.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
