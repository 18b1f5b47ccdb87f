// Package logging builds the zerolog logger shared by the server, the
// request middleware and the gorm adapter.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/mrlokans/bookery/internal/config"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a logger writing to out at the configured level. It also
// installs the logger as zerolog's global one so packages logging through
// zerolog/log agree with it.
func New(cfg config.Log, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer
	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	case FormatJSON:
		w = out
	default:
		return zerolog.Nop(), fmt.Errorf("invalid LOG_FORMAT %q", cfg.Format)
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	zlog.Logger = logger
	return logger, nil
}
