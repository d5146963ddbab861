// Package logger wraps zerolog for the setup command. Diagnostics go to
// stderr so they never mix with rendered output on stdout.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// New returns a console logger on stderr. Verbose lowers the level to debug.
func New(verbose bool) *Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter returns a console logger writing to w
func NewWithWriter(w io.Writer, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	logger := zerolog.New(out).Level(level).With().
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Stage returns a child logger tagged with a pipeline stage
func (l *Logger) Stage(stage string) *Logger {
	return &Logger{l.With().Str("stage", stage).Logger()}
}
