package util

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger zerolog.Logger

func init() {
	Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// RedirectLogger sends all further log output to w, keeping the current level.
func RedirectLogger(w io.Writer) {
	Logger = Logger.Output(zerolog.ConsoleWriter{Out: w, NoColor: !IsTerminal(w), PartsExclude: []string{zerolog.TimestampFieldName}})
}

// SetVerbosity maps the -v/-q counters onto a log level: any -v enables
// debug output, any -q (without -v) only shows warnings and errors.
func SetVerbosity(verbose int, quiet int) {
	switch {
	case verbose > 0:
		Logger = Logger.Level(zerolog.DebugLevel)
	case quiet > 0:
		Logger = Logger.Level(zerolog.WarnLevel)
	default:
		Logger = Logger.Level(zerolog.InfoLevel)
	}
}

func Debugf(format string, args ...interface{}) {
	Logger.Debug().Msgf(format, args...)
}
