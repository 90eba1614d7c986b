package config

import (
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ConsoleLogging struct {
	Level zerolog.Level `yaml:"level"`
}

type FileLogging struct {
	Directory  string        `yaml:"directory"`
	Level      zerolog.Level `yaml:"level"`
	MaxSizeMB  int           `yaml:"max_size_mb"`
	MaxBackups int           `yaml:"max_backups"`
	MaxAgeDays int           `yaml:"max_age_days"`
}

type LoggingConfig struct {
	Console ConsoleLogging `yaml:"console"`
	File    FileLogging    `yaml:"file"`
}

func (c LoggingConfig) CreateLogger() *zerolog.Logger {
	writers := []io.Writer{c.consoleWriter()}

	if fileWriter := c.fileWriter(); fileWriter != nil {
		writers = append(writers, fileWriter)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Caller().
		Logger()
	return &logger
}

func (c LoggingConfig) consoleWriter() io.Writer {
	return &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{
			Writer: zerolog.ConsoleWriter{
				Out:        os.Stdout,
				TimeFormat: time.RFC3339,
			},
		},
		Level: c.Console.Level,
	}
}

// fileWriter returns nil when file logging is disabled or the directory cannot be created.
func (c LoggingConfig) fileWriter() io.Writer {
	if len(strings.TrimSpace(c.File.Directory)) == 0 {
		return nil
	}

	if err := os.MkdirAll(c.File.Directory, 0744); err != nil {
		return nil
	}

	rotation := &lumberjack.Logger{
		Filename:   path.Join(c.File.Directory, "timerhook.log"),
		MaxSize:    orDefault(c.File.MaxSizeMB, 10),
		MaxBackups: orDefault(c.File.MaxBackups, 3),
		MaxAge:     orDefault(c.File.MaxAgeDays, 28),
		Compress:   true,
	}

	return &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{
			// plain text in the file too, just without color codes
			Writer: zerolog.ConsoleWriter{
				NoColor:    true,
				Out:        rotation,
				TimeFormat: time.RFC3339,
			},
		},
		Level: c.File.Level,
	}
}

func orDefault(value, def int) int {
	if value <= 0 {
		return def
	}
	return value
}
