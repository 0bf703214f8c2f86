package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestSlog() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &buf
}

func TestNewSlogLogger(t *testing.T) {
	slogLogger, buf := setupTestSlog()

	slogAdapter := NewSlogLogger(slogLogger, Config{LogLevel: Info})

	require.NotNil(t, slogAdapter)
	assert.Equal(t, Info, slogAdapter.(*SlogLogger).LogLevel)
	require.NotNil(t, buf)
}

func TestSlogLogger_LogMode(t *testing.T) {
	slogLogger, _ := setupTestSlog()

	logger := NewSlogLogger(slogLogger, Config{LogLevel: Error})

	// Test changing log mode
	infoLogger := logger.LogMode(Info)
	assert.Equal(t, Info, infoLogger.(*SlogLogger).LogLevel)

	// Test that original is not affected
	assert.Equal(t, Error, logger.(*SlogLogger).LogLevel)
}

func TestSlogLogger_Output(t *testing.T) {
	slogLogger, buf := setupTestSlog()
	logger := NewSlogLogger(slogLogger, Config{LogLevel: Debug})

	logger.Debug("marked for destruction", 7)
	logger.Warn("reject method not found", "NoSuchMethod")

	output := buf.String()
	assert.Contains(t, output, "marked for destruction")
	assert.Contains(t, output, "reject method not found")
	assert.Contains(t, output, `"file"`)
}

func TestSlogLogger_RespectsLevel(t *testing.T) {
	slogLogger, buf := setupTestSlog()
	logger := NewSlogLogger(slogLogger, Config{LogLevel: Error})

	logger.Debug("quiet")
	logger.Info("quiet")
	logger.Warn("quiet")
	assert.Empty(t, buf.String())

	logger.Error("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelError, SlogLevel(Error))
	assert.Equal(t, slog.LevelWarn, SlogLevel(Warn))
	assert.Equal(t, slog.LevelInfo, SlogLevel(Info))
	assert.Equal(t, slog.LevelDebug, SlogLevel(Debug))
	assert.Equal(t, slog.LevelError, SlogLevel(LogLevel(0)))
	assert.Greater(t, SlogLevel(Silent), slog.LevelError)
}
