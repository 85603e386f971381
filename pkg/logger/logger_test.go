package logger

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := NewLogger(TestConfig())
		ctx := ContextWithLogger(context.Background(), expected)

		actual := FromContext(ctx)

		require.NotNil(t, actual)
		assert.Equal(t, expected, actual)
	})

	t.Run("Should fall back to default logger when context has none", func(t *testing.T) {
		log := FromContext(context.Background())

		require.NotNil(t, log)
		log.Info("message from fallback logger")
	})

	t.Run("Should fall back when wrong type stored under the key", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), LoggerCtxKey, "not a logger")

		log := FromContext(ctx)

		require.NotNil(t, log)
	})
}

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	t.Run("Should convert levels including the disabled sentinel", func(t *testing.T) {
		assert.Equal(t, -4, int(DebugLevel.ToCharmlogLevel()))
		assert.Equal(t, 0, int(InfoLevel.ToCharmlogLevel()))
		assert.Equal(t, 4, int(WarnLevel.ToCharmlogLevel()))
		assert.Equal(t, 8, int(ErrorLevel.ToCharmlogLevel()))
		assert.Equal(t, 1000, int(DisabledLevel.ToCharmlogLevel()))
		assert.Equal(t, 0, int(LogLevel("unknown").ToCharmlogLevel()))
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Should write through the configured output", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf, TimeFormat: "15:04:05"})

		log.Info("hello", "component", "test")

		assert.Contains(t, buf.String(), "hello")
		assert.Contains(t, buf.String(), "component")
	})

	t.Run("Should respect level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: WarnLevel, Output: &buf, TimeFormat: "15:04:05"})

		log.Debug("debug message")
		log.Info("info message")
		log.Warn("warn message")
		log.Error("error message")

		out := buf.String()
		assert.NotContains(t, out, "debug message")
		assert.NotContains(t, out, "info message")
		assert.Contains(t, out, "warn message")
		assert.Contains(t, out, "error message")
	})

	t.Run("Should emit JSON when configured", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true, TimeFormat: "15:04:05"})

		log.Info("structured message")

		out := buf.String()
		assert.Contains(t, out, "structured message")
		assert.Contains(t, out, "{")
	})

	t.Run("Should carry With fields onto child loggers", func(t *testing.T) {
		var buf bytes.Buffer
		base := NewLogger(&Config{Level: InfoLevel, Output: &buf, TimeFormat: "15:04:05"})

		base.With("node", "mattermost").Info("dispatched")

		out := buf.String()
		assert.Contains(t, out, "node")
		assert.Contains(t, out, "mattermost")
	})
}

func TestConfigDefaults(t *testing.T) {
	t.Run("Should discard everything under the test configuration", func(t *testing.T) {
		cfg := TestConfig()
		assert.Equal(t, DisabledLevel, cfg.Level)
		assert.Equal(t, io.Discard, cfg.Output)
	})

	t.Run("Should detect the test environment", func(t *testing.T) {
		assert.True(t, IsTestEnvironment())
	})
}
