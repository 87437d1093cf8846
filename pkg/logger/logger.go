// Package logger construye el logger estructurado de la aplicación sobre
// zerolog.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controla el comportamiento del logger.
type Options struct {
	// Level es el nivel mínimo: trace, debug, info, warn, error. Por
	// defecto info.
	Level string
	// Pretty activa salida de consola legible; en producción se emite JSON.
	Pretty bool
	// Output es el destino de los logs. Por defecto os.Stdout.
	Output io.Writer
}

// New construye un logger con las opciones dadas.
func New(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
