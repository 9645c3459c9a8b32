// Package logx is a minimal verbosity-gated logger. It prints straight to
// stderr with fmt.Fprintf, the way the rest of this lineage reports
// diagnostics, rather than pulling in a structured-logging library.
package logx

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// Logger prints messages to an output stream when the configured verbosity
// is at or above a message's level. The zero value is usable and logs at
// level 0 (warnings and findings reported unconditionally) to os.Stderr.
type Logger struct {
	out     io.Writer
	verbose int32
}

// New returns a Logger writing to os.Stderr at the given verbosity.
// verbosity 0 means only Warnf/Errorf output; each additional -v raises the
// level at which Infof/Debugf become visible.
func New(verbosity int) *Logger {
	l := &Logger{out: os.Stderr}
	l.SetVerbosity(verbosity)
	return l
}

// SetVerbosity changes the active verbosity level. Safe for concurrent use
// with logging calls from parallel materialization workers.
func (l *Logger) SetVerbosity(v int) {
	//nolint:gosec // verbosity is a small CLI-supplied flag count
	atomic.StoreInt32(&l.verbose, int32(v))
}

func (l *Logger) level() int {
	return int(atomic.LoadInt32(&l.verbose))
}

func (l *Logger) writer() io.Writer {
	if l.out != nil {
		return l.out
	}
	return os.Stderr
}

// Errorf reports a condition the spec treats as fatal (USAGE errors). Always
// printed.
func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.writer(), "error: "+format+"\n", args...)
}

// Warnf reports a non-fatal finding: CRC mismatches, decompression
// failures, skipped nodes, per-dirent I/O errors. Always printed — §7
// requires nothing be swallowed silently.
func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.writer(), "warn: "+format+"\n", args...)
}

// Infof prints progress detail visible at -v and above.
func (l *Logger) Infof(format string, args ...any) {
	if l.level() < 1 {
		return
	}
	fmt.Fprintf(l.writer(), "info: "+format+"\n", args...)
}

// Debugf prints fine-grained detail visible at -vv and above.
func (l *Logger) Debugf(format string, args ...any) {
	if l.level() < 2 {
		return
	}
	fmt.Fprintf(l.writer(), "debug: "+format+"\n", args...)
}

// Discard is a Logger that drops everything, for callers (library use,
// tests) that want jffs2 internals silent.
var Discard = &Logger{out: io.Discard}
