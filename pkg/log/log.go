// Package log provides a logging abstraction used throughout the inkml
// codec so that callers can plug in their own logging backend (or none
// at all) without the core depending on a concrete implementation.
package log

import (
	"io"
	"log"
	"os"
)

// Logger defines an interface for logging messages.
type Logger interface {

	// Printf logs a formatted string.
	Printf(format string, args ...interface{})

	// Println logs a line.
	Println(args ...interface{})
}

type logger struct {
	log Logger
}

// The codec's 3 defined loggers.
var (
	Debug = &logger{}
	Info  = &logger{}
	Trace = &logger{}
)

// SetDebugLogger sets the debug logger.
func SetDebugLogger(l Logger) {
	Debug.log = l
}

// SetInfoLogger sets the info logger.
func SetInfoLogger(l Logger) {
	Info.log = l
}

// SetTraceLogger sets the trace logger.
func SetTraceLogger(l Logger) {
	Trace.log = l
}

// SetDefaultDebugLogger sets the default debug logger.
func SetDefaultDebugLogger() {
	SetDebugLogger(log.New(os.Stderr, "DEBUG: ", log.Ldate|log.Ltime))
}

// SetDefaultInfoLogger sets the default info logger.
func SetDefaultInfoLogger() {
	SetInfoLogger(log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime))
}

// SetDefaultTraceLogger sets the default trace logger. Trace is discarded
// by default; it exists for parser-internal diagnostics (modifier/column
// resolution in the trace-data micro-parser).
func SetDefaultTraceLogger() {
	SetTraceLogger(log.New(io.Discard, "TRACE: ", log.Ldate|log.Ltime))
}

// SetDefaultLoggers sets all loggers to their default logger.
func SetDefaultLoggers() {
	SetDefaultDebugLogger()
	SetDefaultInfoLogger()
	SetDefaultTraceLogger()
}

// DisableLoggers turns off all logging.
func DisableLoggers() {
	SetDebugLogger(nil)
	SetInfoLogger(nil)
	SetTraceLogger(nil)
}

// Printf writes a formatted message to the log.
func (l *logger) Printf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Printf(format, args...)
}

// Println writes a line to the log.
func (l *logger) Println(args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Println(args...)
}
