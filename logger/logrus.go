package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/Obighbyd/dm-accepts-nested-attributes/utils"
)

// LogrusLogger implements Interface using logrus
type LogrusLogger struct {
	Logger   *logrus.Logger
	LogLevel LogLevel
}

// NewLogrusLogger creates a new logger using logrus
func NewLogrusLogger(logger *logrus.Logger, config Config) Interface {
	return &LogrusLogger{
		Logger:   logger,
		LogLevel: config.LogLevel,
	}
}

// NewLogrusLoggerWithConfig creates a new logrus logger with custom configuration
func NewLogrusLoggerWithConfig(config Config) Interface {
	logger := logrus.New()
	logger.SetLevel(LogrusLevel(config.LogLevel))
	return NewLogrusLogger(logger, config)
}

// LogMode sets the log level
func (l *LogrusLogger) LogMode(level LogLevel) Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

// Debug logs debug messages
func (l *LogrusLogger) Debug(msg string, data ...interface{}) {
	if l.LogLevel >= Debug {
		l.Logger.WithFields(l.fields(data...)).Debug(msg)
	}
}

// Info logs info messages
func (l *LogrusLogger) Info(msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.Logger.WithFields(l.fields(data...)).Info(msg)
	}
}

// Warn logs warning messages
func (l *LogrusLogger) Warn(msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.Logger.WithFields(l.fields(data...)).Warn(msg)
	}
}

// Error logs error messages
func (l *LogrusLogger) Error(msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.Logger.WithFields(l.fields(data...)).Error(msg)
	}
}

func (l *LogrusLogger) fields(data ...interface{}) logrus.Fields {
	return logrus.Fields{
		"file": utils.FileWithLineNum(),
		"data": data,
	}
}

// LogrusLevel converts LogLevel to logrus.Level
func LogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case Silent:
		return logrus.PanicLevel
	case Error:
		return logrus.ErrorLevel
	case Warn:
		return logrus.WarnLevel
	case Info:
		return logrus.InfoLevel
	case Debug:
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}
