package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Obighbyd/dm-accepts-nested-attributes/utils"
)

// SlogLogger implements Interface using log/slog
type SlogLogger struct {
	Logger   *slog.Logger
	LogLevel LogLevel
}

// NewSlogLogger creates a new logger using log/slog
func NewSlogLogger(logger *slog.Logger, config Config) Interface {
	return &SlogLogger{
		Logger:   logger,
		LogLevel: config.LogLevel,
	}
}

// NewSlogLoggerWithConfig creates a new slog logger with custom configuration
func NewSlogLoggerWithConfig(config Config, handler ...slog.Handler) Interface {
	var logger *slog.Logger

	if len(handler) > 0 {
		logger = slog.New(handler[0])
	} else {
		// Default configuration
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: SlogLevel(config.LogLevel),
		}))
	}

	return NewSlogLogger(logger, config)
}

// LogMode sets the log level
func (l *SlogLogger) LogMode(level LogLevel) Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

// Debug logs debug messages
func (l *SlogLogger) Debug(msg string, data ...interface{}) {
	if l.LogLevel >= Debug {
		l.log(slog.LevelDebug, msg, data...)
	}
}

// Info logs info messages
func (l *SlogLogger) Info(msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.log(slog.LevelInfo, msg, data...)
	}
}

// Warn logs warning messages
func (l *SlogLogger) Warn(msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.log(slog.LevelWarn, msg, data...)
	}
}

// Error logs error messages
func (l *SlogLogger) Error(msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.log(slog.LevelError, msg, data...)
	}
}

func (l *SlogLogger) log(level slog.Level, msg string, data ...interface{}) {
	ctx := context.Background()
	if !l.Logger.Enabled(ctx, level) {
		return
	}

	r := slog.NewRecord(time.Now(), level, msg, utils.CallerFrame().PC)
	r.Add(slog.String("file", utils.FileWithLineNum()), slog.Any("data", data))
	_ = l.Logger.Handler().Handle(ctx, r)
}

// SlogLevel converts LogLevel to slog.Level
func SlogLevel(level LogLevel) slog.Level {
	switch level {
	case Silent:
		return slog.LevelError + 4
	case Error:
		return slog.LevelError
	case Warn:
		return slog.LevelWarn
	case Info:
		return slog.LevelInfo
	case Debug:
		return slog.LevelDebug
	default:
		return slog.LevelError
	}
}
