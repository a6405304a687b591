package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/embedkit/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerBuilder_DefaultConfig(t *testing.T) {
	l, err := NewLoggerBuilder().WithConfig(config.NewDefaultLogConfig()).WithConsoleOutput(&bytes.Buffer{}).Build()
	require.NoError(t, err)
	assert.False(t, l.Config().EnableFile)
}

func TestLoggerBuilder_InvalidLevel(t *testing.T) {
	l, err := NewLoggerBuilder().
		WithConfig(config.LogConfig{LogLevel: "loud", LogFormat: "json"}).
		WithConsoleOutput(&bytes.Buffer{}).
		Build()

	assert.Error(t, err)
	assert.Nil(t, l)
}

func TestLoggerBuilder_WithLevelOverridesConfig(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLoggerBuilder().
		WithConfig(config.LogConfig{LogLevel: "error", LogFormat: "json"}).
		WithLevel(zerolog.DebugLevel).
		WithConsoleOutput(&buf).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestLoggerBuilder_JSONToBuffer(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewDefaultLogConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "debug"

	l, err := NewLoggerBuilder().
		WithConsoleOutput(&buf).
		WithComponent("converter").
		WithConfig(cfg).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Debug().Str("kind", "TooManyFields").Msg("conversion refused")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "converter", entry["component"])
	assert.Equal(t, "TooManyFields", entry["kind"])
	assert.Equal(t, "conversion refused", entry["message"])
}

func TestLoggerBuilder_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLoggerBuilder().
		WithConfig(config.LogConfig{LogFormat: "json", LogLevel: "warn"}).
		WithConsoleOutput(&buf).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.GetZerolog().Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerBuilder_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "embedkit.log")
	cfg := config.LogConfig{LogFile: logFile, LogFormat: "json", LogLevel: "info"}

	l, err := NewLoggerBuilder().WithConfig(cfg).WithConsoleOutput(&bytes.Buffer{}).Build()
	require.NoError(t, err)
	assert.True(t, l.Config().EnableFile)

	l.GetZerolog().Info().Msg("written to file")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestConfigConverter_Fallbacks(t *testing.T) {
	converted, err := NewConfigConverter().ConvertConfig(config.LogConfig{LogLevel: "loud", LogFormat: "xml"})

	assert.Error(t, err)
	assert.Equal(t, zerolog.InfoLevel, converted.Level)
	assert.Equal(t, FormatConsole, converted.Format)
	assert.Equal(t, config.DefaultMaxLogSizeMB, converted.MaxSizeMB)
	assert.Equal(t, config.DefaultMaxLogBackups, converted.MaxBackups)
	assert.False(t, converted.EnableFile)
}

func TestLogFormat_String(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "console", LogFormat(42).String())
}
