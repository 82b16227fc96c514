package utils

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LoggerConfig configures InitLogger.
type LoggerConfig struct {
	// console or json
	Format string
	// zerolog level name; unknown values fall back to info
	Level string
	// defaults to os.Stdout
	Output io.Writer
	// console format only
	EnableColors bool
}

// InitLogger builds the service logger.
func InitLogger(config ...LoggerConfig) zerolog.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out := cfg.Output
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			NoColor:    !cfg.EnableColors,
			TimeFormat: time.DateTime,
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "pandas-learning-platform").
		Logger()
}
