package widget

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(defaultLogger())
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil)).With("ui", "glamp")
}

// SetLogger sets the logger used by widgets created afterwards. Passing nil
// restores the default, which writes text to stderr.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = defaultLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger { return loggerPtr.Load() }
