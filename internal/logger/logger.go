// Package logger configures the zerolog logger shared by the server, the
// database layer and the CLI.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultMaxSizeMB  = 50
	DefaultMaxBackups = 5
	DefaultMaxAgeDays = 30
)

// Config represents logger configuration
type Config struct {
	// Level is one of trace, debug, info, warn, error.
	Level string
	// Pretty enables the human-readable console writer.
	Pretty bool
	// FilePath adds a rotating log file next to the console output.
	FilePath string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New builds a logger from cfg and installs it as the zerolog global logger.
func New(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	var console io.Writer = cfg.Output
	if cfg.Pretty {
		console = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "2006-01-02 15:04:05"}
	}

	writer := console
	if cfg.FilePath != "" {
		if err := ensureLogDir(cfg.FilePath); err != nil {
			l := zerolog.New(console).With().Timestamp().Logger()
			l.Error().Err(err).Str("path", cfg.FilePath).Msg("Failed to prepare log directory; logging to console only")
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    DefaultMaxSizeMB,
				MaxBackups: DefaultMaxBackups,
				MaxAge:     DefaultMaxAgeDays,
				Compress:   true,
			}
			writer = zerolog.MultiLevelWriter(console, fileWriter)
		}
	}

	l := zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = l
	return l
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
