// Package logging writes diagnostics to stderr.
//
// Debug output is off unless SetDebug(true) is called (the --debug flag).
// Warnings and errors are always written, since non-fatal failures during a
// command (an unreadable directory, a failing field generator) are reported
// this way while the command keeps going.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05.000"

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	output  io.Writer = os.Stderr
	logger  zerolog.Logger
)

func init() {
	rebuild()
}

// rebuild must be called with mu held for writing (or from init).
func rebuild() {
	w := zerolog.ConsoleWriter{
		Out:        output,
		NoColor:    noColor,
		TimeFormat: timeFormat,
	}
	level := zerolog.WarnLevel
	if enabled {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	rebuild()
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	rebuild()
}

// SetOutput redirects all log output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	output = w
	rebuild()
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	l := current()
	l.Debug().Msgf(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	l := current()
	l.Debug().Msg(fmt.Sprintf("=== %s ===", section))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	l := current()
	l.Debug().Interface("value", value).Msg(key)
}

// Warn reports a non-fatal problem. Always printed.
func Warn(format string, args ...interface{}) {
	l := current()
	l.Warn().Msgf(format, args...)
}

// Error reports err with a short context message. Always printed.
func Error(err error, msg string) {
	l := current()
	l.Error().Err(err).Msg(msg)
}
