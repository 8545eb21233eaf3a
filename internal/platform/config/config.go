// Package config loads engine configuration from the environment.
//
// Every variable the engine reads carries the MACROS_ENGINE_ prefix.
// Struct tags name only the suffix, so `env:"DB_PATH"` resolves
// MACROS_ENGINE_DB_PATH.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag the engine declares.
const EnvPrefix = "MACROS_ENGINE_"

// ParseEnv fills target from prefixed environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse %s* environment: %w", EnvPrefix, err)
	}
	return nil
}

// Exitf prints a fatal error to stderr and exits the process with code 1.
// It is the last call a command main makes when startup cannot proceed;
// verb dispatch returns exit codes instead so deferred cleanup still runs.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
