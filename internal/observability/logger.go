package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog behind the small interface the services depend on.
type Logger struct {
	log zerolog.Logger
}

func NewLogger() *Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	return &Logger{log: log}
}

func (l *Logger) Info(msg string) {
	l.log.Info().Msg(msg)
}

func (l *Logger) Error(msg string) {
	l.log.Error().Msg(msg)
}

// Request logs one served HTTP request.
func (l *Logger) Request(method, path, requestID string, status int, duration time.Duration) {
	l.log.Info().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", status).
		Dur("duration", duration).
		Msg("request")
}
