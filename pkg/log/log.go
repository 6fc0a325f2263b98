// Package log builds the zerolog logger used by the example binaries.
// Console output by default; PATHZ_DEBUG enables the debug level that
// zerologr maps the engine's V(1) diagnostics onto.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func New() *zerolog.Logger {
	var output io.Writer
	if os.Getenv("PATHZ_LOG_JSON") != "" {
		output = os.Stderr
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02T15:04:05.999Z07:00"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	level := zerolog.InfoLevel
	if os.Getenv("PATHZ_DEBUG") != "" {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &logger
}
