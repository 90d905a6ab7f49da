// Package config reads the hoist CLI settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

// DefaultDebounce is how long watch waits for a burst of writes to end.
const DefaultDebounce = 100 * time.Millisecond

// Env holds the settings taken from HOIST_* variables. Command-line flags
// override them.
type Env struct {
	// LogLevel is one of debug, info, warn or error. ENV: HOIST_LOG_LEVEL
	LogLevel string `env:"HOIST_LOG_LEVEL,default=info"`
	// Debounce delays re-rendering in watch mode. ENV: HOIST_DEBOUNCE
	Debounce time.Duration `env:"HOIST_DEBOUNCE,default=100ms"`
	// Scenario is used when no scenario argument is given. ENV: HOIST_SCENARIO
	Scenario string `env:"HOIST_SCENARIO"`
}

// FromEnv decodes Env from the process environment. Unset variables take
// their defaults; a value that does not parse is an error.
func FromEnv() (Env, error) {
	var env Env
	if err := envdecode.StrictDecode(&env); err != nil {
		return Env{}, fmt.Errorf("read environment: %w", err)
	}
	return env, nil
}

// ParseLevel maps a level name to a slog.Level. Names are case-insensitive.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", name)
	}
	return level, nil
}
