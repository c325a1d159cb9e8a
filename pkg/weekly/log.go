package weekly

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used to report rejected inputs in comparisons
// and membership checks. Passing nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func getLogger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
