package models

import (
	"log/slog"

	"github.com/taigrr/facet/pkg/internal/logging"
)

var logger logging.Var

// SetLogger configures the logger used by the loaders. By default nothing
// is logged; nil restores the silent default. Successful loads are logged
// at [slog.LevelInfo].
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Load()
}
