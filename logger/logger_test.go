package logger

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type printlnWriter struct {
	buf bytes.Buffer
}

func (w *printlnWriter) Println(v ...interface{}) {
	fmt.Fprintln(&w.buf, v...)
}

func TestLoggerLevels(t *testing.T) {
	writer := &printlnWriter{}
	logger := New(writer, Config{LogLevel: Warn})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", "extra")

	output := writer.buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "[warn] warn message")
	assert.Contains(t, output, "[error] error message")
	assert.Contains(t, output, "extra")
}

func TestLoggerSilent(t *testing.T) {
	writer := &printlnWriter{}
	logger := New(writer, Config{LogLevel: Silent})

	logger.Error("error message")
	assert.Empty(t, writer.buf.String())
}

func TestLoggerLogMode(t *testing.T) {
	writer := &printlnWriter{}
	logger := New(writer, Config{LogLevel: Error})

	verbose := logger.LogMode(Debug)
	require.NotNil(t, verbose)
	verbose.Debug("debug message")
	assert.Contains(t, writer.buf.String(), "debug message")

	// the original keeps its level
	logger.Debug("still quiet")
	assert.NotContains(t, writer.buf.String(), "still quiet")
}

func TestDefaultLogger(t *testing.T) {
	require.NotNil(t, Default)
	assert.GreaterOrEqual(t, DefaultLogLevel, Silent)
}
