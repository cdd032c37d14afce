// Package logging configures the process-wide logger.
//
// Setup is called once from main; the pipeline receives the logger as a
// parameter and never reads global logger state. Every line carries the
// run's request id, the level, and the caller file:line, mirroring the
// format used across the orchestration services:
//
//	Request id : a1b2c3 | INFO  | pipeline/pipeline.go:42 | composited overlay
package logging

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds a console logger writing to w at the given level, with
// timestamps and caller information.
func Setup(w io.Writer, level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()
}

// WithRequestID returns a child logger tagging every event with the run's
// request id.
func WithRequestID(log zerolog.Logger, id string) zerolog.Logger {
	return log.With().Str("request_id", id).Logger()
}

// NewRequestID generates a short random hex id for one pipeline run.
func NewRequestID() string {
	var b [3]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "000000"
	}
	return hex.EncodeToString(b[:])
}
