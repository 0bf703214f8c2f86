package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusLogger(t *testing.T) {
	var buf bytes.Buffer
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(&buf)

	logrusAdapter := NewLogrusLogger(logrusLogger, Config{LogLevel: Info})

	require.NotNil(t, logrusAdapter)
	assert.Equal(t, Info, logrusAdapter.(*LogrusLogger).LogLevel)
}

func TestLogrusLogger_LogMode(t *testing.T) {
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(&bytes.Buffer{})

	logger := NewLogrusLogger(logrusLogger, Config{LogLevel: Error})

	// Test changing log mode
	infoLogger := logger.LogMode(Info)
	assert.Equal(t, Info, infoLogger.(*LogrusLogger).LogLevel)

	// Test that original is not affected
	assert.Equal(t, Error, logger.(*LogrusLogger).LogLevel)
}

func TestLogrusLogger_Output(t *testing.T) {
	var buf bytes.Buffer
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(logrus.DebugLevel)

	logger := NewLogrusLogger(logrusLogger, Config{LogLevel: Debug})
	logger.Debug("delete flag ignored")
	logger.Warn("reject method not found", "NoSuchMethod")

	output := buf.String()
	assert.Contains(t, output, "delete flag ignored")
	assert.Contains(t, output, "reject method not found")
}

func TestLogrusLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(logrus.DebugLevel)

	logger := NewLogrusLogger(logrusLogger, Config{LogLevel: Error})
	logger.Debug("quiet")
	logger.Info("quiet")
	logger.Warn("quiet")
	assert.Empty(t, buf.String())
}

func TestLogrusLevel(t *testing.T) {
	assert.Equal(t, logrus.PanicLevel, LogrusLevel(Silent))
	assert.Equal(t, logrus.ErrorLevel, LogrusLevel(Error))
	assert.Equal(t, logrus.WarnLevel, LogrusLevel(Warn))
	assert.Equal(t, logrus.InfoLevel, LogrusLevel(Info))
	assert.Equal(t, logrus.DebugLevel, LogrusLevel(Debug))
	assert.Equal(t, logrus.ErrorLevel, LogrusLevel(LogLevel(99)))
}
