// Package log builds the zap logger used by the osdwire command.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level and destinations of the logger.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info, or debug
	// when the DEBUG environment variable is set.
	Level string `mapstructure:"level"`
	// File, when set, also writes logs to a rotated file.
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max-size"` // megabytes
	MaxBackups int    `mapstructure:"max-backups"`
	MaxAge     int    `mapstructure:"max-age"` // days
	Compress   bool   `mapstructure:"compress"`

	// Output receives console logs. Nil means stderr.
	Output io.Writer `mapstructure:"-"`
}

// DefaultConfig mirrors the rotation settings used for node logs.
func DefaultConfig() Config {
	return Config{
		MaxSize:    30,
		MaxBackups: 3,
		MaxAge:     1,
	}
}

// New returns a console logger and a function that flushes it and closes
// the log file.
func New(cfg Config) (*zap.Logger, func() error, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	syncers := []zapcore.WriteSyncer{zapcore.AddSync(out)}

	var hook *lumberjack.Logger
	if cfg.File != "" {
		hook = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		syncers = append(syncers, zapcore.AddSync(hook))
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.NewMultiWriteSyncer(syncers...),
		level,
	)
	logger := zap.New(core, zap.AddCaller())

	closer := func() error {
		_ = logger.Sync()
		if hook != nil {
			return hook.Close()
		}
		return nil
	}
	return logger, closer, nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "line",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		if os.Getenv("DEBUG") != "" {
			return zap.DebugLevel, nil
		}
		return zap.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
