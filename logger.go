package svgfilter

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled is false at all levels, so a
// compile never builds the attributes of a primitive record.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var compileLogger atomic.Pointer[slog.Logger]

func init() {
	compileLogger.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger Compile and CompileGraph report to. Nil
// restores the silent default. It is safe to call while compiles run.
//
// Records written during a compile:
//
//	DEBUG svgfilter: primitive compiled  index kind op result
//	DEBUG svgfilter: primitive failed    index kind err
//	DEBUG svgfilter: primitive skipped   index kind err (empty region)
//	DEBUG svgfilter: filter invalid      filter err
//	WARN  svgfilter: fragment snapshot failed  href err
//
// A failed primitive does not make the filter invalid unless it is the
// last one; "filter invalid" is the record to watch for elements that
// render unfiltered.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	compileLogger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return compileLogger.Load()
}
