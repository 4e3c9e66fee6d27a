package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallard/lexiscreen/internal/config"
)

func TestSetupReturnsLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG"} {
		l, err := Setup(config.ServerConfig{Port: 5000, LogLevel: level})
		require.NoError(t, err, "level %q", level)
		assert.NotNil(t, l)
	}
}

func TestSetupFallsBackOnUnknownLevel(t *testing.T) {
	l, err := Setup(config.ServerConfig{Port: 5000, LogLevel: "shouting"})
	require.NoError(t, err)
	assert.NotNil(t, l)
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo), "fallback level should be info")
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}
