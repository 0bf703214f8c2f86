package logger

import (
	"fmt"
	"log"
	"os"
)

// Interface logger interface
type Interface interface {
	LogMode(LogLevel) Interface
	Debug(msg string, data ...interface{})
	Info(msg string, data ...interface{})
	Warn(msg string, data ...interface{})
	Error(msg string, data ...interface{})
}

// LogLevel log level
type LogLevel int

const (
	// Silent silent log level
	Silent LogLevel = iota + 1
	// Error print errors
	Error
	// Warn print warn messages and errors
	Warn
	// Info print info, warn messages and errors
	Info
	// Debug print everything
	Debug
)

// Config logger configuration shared by every adapter
type Config struct {
	LogLevel LogLevel
}

// DefaultLogLevel default log level
var DefaultLogLevel LogLevel

// Default default logger
var Default Interface

func init() {
	switch os.Getenv("NESTED_LOG_LEVEL") {
	case "debug":
		DefaultLogLevel = Debug
	case "info":
		DefaultLogLevel = Info
	case "warn":
		DefaultLogLevel = Warn
	case "silent":
		DefaultLogLevel = Silent
	default:
		DefaultLogLevel = Error
	}
	Default = New(log.New(os.Stdout, "\r\n", log.LstdFlags), Config{LogLevel: DefaultLogLevel})
}

// Writer log writer interface
type Writer interface {
	Println(v ...interface{})
}

// Logger logger backed by the standard library
type Logger struct {
	Writer
	LogLevel LogLevel
}

// New creates a logger writing through the given writer
func New(writer Writer, config Config) Interface {
	return &Logger{Writer: writer, LogLevel: config.LogLevel}
}

// LogMode sets the log level
func (l *Logger) LogMode(level LogLevel) Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

// Debug print debug messages
func (l *Logger) Debug(msg string, data ...interface{}) {
	l.print(Debug, "debug", msg, data...)
}

// Info print info
func (l *Logger) Info(msg string, data ...interface{}) {
	l.print(Info, "info", msg, data...)
}

// Warn print warn messages
func (l *Logger) Warn(msg string, data ...interface{}) {
	l.print(Warn, "warn", msg, data...)
}

// Error print error messages
func (l *Logger) Error(msg string, data ...interface{}) {
	l.print(Error, "error", msg, data...)
}

func (l *Logger) print(level LogLevel, tag, msg string, data ...interface{}) {
	if l.LogLevel < level {
		return
	}
	if len(data) > 0 {
		l.Println(fmt.Sprintf("[%s] %s %v", tag, msg, data))
	} else {
		l.Println(fmt.Sprintf("[%s] %s", tag, msg))
	}
}
