package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("HOIST_LOG_LEVEL", "")
	t.Setenv("HOIST_DEBOUNCE", "")
	t.Setenv("HOIST_SCENARIO", "")

	env, err := FromEnv()

	require.NoError(t, err)
	require.Equal(t, "info", env.LogLevel)
	require.Equal(t, DefaultDebounce, env.Debounce)
	require.Empty(t, env.Scenario)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HOIST_LOG_LEVEL", "debug")
	t.Setenv("HOIST_DEBOUNCE", "250ms")
	t.Setenv("HOIST_SCENARIO", "layout.yaml")

	env, err := FromEnv()

	require.NoError(t, err)
	require.Equal(t, Env{LogLevel: "debug", Debounce: 250 * time.Millisecond, Scenario: "layout.yaml"}, env)
}

func TestFromEnv_BadDuration(t *testing.T) {
	t.Setenv("HOIST_DEBOUNCE", "soon")

	_, err := FromEnv()

	require.ErrorContains(t, err, "read environment")
	require.ErrorContains(t, err, `"soon"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	require.ErrorContains(t, err, `invalid log level "loud"`)
}
