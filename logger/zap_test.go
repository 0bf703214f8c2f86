package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupTestZap() (Interface, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core), Config{LogLevel: Debug}), logs
}

func TestNewZapLogger(t *testing.T) {
	zapAdapter := NewZapLogger(zap.NewNop(), Config{LogLevel: Info})

	require.NotNil(t, zapAdapter)
	assert.Equal(t, Info, zapAdapter.(*ZapLogger).LogLevel)
}

func TestZapLogger_LogMode(t *testing.T) {
	logger := NewZapLogger(zap.NewNop(), Config{LogLevel: Error})

	infoLogger := logger.LogMode(Info)
	assert.Equal(t, Info, infoLogger.(*ZapLogger).LogLevel)
	assert.Equal(t, Error, logger.(*ZapLogger).LogLevel)
}

func TestZapLogger_Output(t *testing.T) {
	logger, logs := setupTestZap()

	logger.Info("new nested record rejected")
	logger.Error("save failed", "boom")

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "new nested record rejected", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestZapLogger_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core), Config{LogLevel: Warn})

	logger.Debug("quiet")
	logger.Info("quiet")
	assert.Equal(t, 0, logs.Len())

	logger.Warn("loud")
	assert.Equal(t, 1, logs.Len())
}

func TestZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.FatalLevel, ZapLevel(Silent))
	assert.Equal(t, zapcore.ErrorLevel, ZapLevel(Error))
	assert.Equal(t, zapcore.WarnLevel, ZapLevel(Warn))
	assert.Equal(t, zapcore.InfoLevel, ZapLevel(Info))
	assert.Equal(t, zapcore.DebugLevel, ZapLevel(Debug))
}
