package render

import (
	"log/slog"

	"github.com/taigrr/facet/pkg/internal/logging"
)

var logger logging.Var

// SetLogger configures the logger used by render.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: per-face decisions (skipped, degenerate faces)
//   - [slog.LevelInfo]: render totals
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Load()
}
