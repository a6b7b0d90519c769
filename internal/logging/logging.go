package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger. Console output is human-readable;
// pass json=true for machine-parseable lines in production.
func Setup(json bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if json {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}

	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
}
