package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/config"
)

var log zerolog.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger from the application config. In development
// the output is human-readable; everywhere else it stays structured JSON.
func Init(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	if cfg.App.Environment == "development" {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger
	if cfg.App.Environment == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	log = logger.Level(level).With().
		Timestamp().
		Str("app", cfg.App.Name).
		Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
