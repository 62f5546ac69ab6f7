// Package logging holds the swappable, silent-by-default slog loggers used
// by facet's libraries.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nop = slog.New(nopHandler{})

// Var is a logger that can be replaced at any time. The zero value logs
// nothing.
type Var struct {
	p atomic.Pointer[slog.Logger]
}

// Set replaces the logger. Pass nil to restore the silent default.
func (v *Var) Set(l *slog.Logger) {
	if l == nil {
		l = nop
	}
	v.p.Store(l)
}

// Load returns the current logger.
func (v *Var) Load() *slog.Logger {
	if l := v.p.Load(); l != nil {
		return l
	}
	return nop
}
