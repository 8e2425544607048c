// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/exeme-project/exeme-lang/internal/log"
)

// Value sources reported in the "source" log field.
const (
	sourceEnv     = "environment"
	sourceDefault = "default"
)

// lookupEnv resolves key to a typed value. An unset or empty variable, or one
// parse rejects, yields def. Every resolution is logged with its source.
func lookupEnv[T any](key string, def T, parse func(string) (T, error)) T {
	logger := log.WithComponent("config")

	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		msg := "using default value"
		if ok {
			msg = "using default value (environment variable is empty)"
		}
		logger.Debug().
			Str("key", key).
			Str("default", fmt.Sprint(def)).
			Str("source", sourceDefault).
			Msg(msg)
		return def
	}

	v, err := parse(raw)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("key", key).
			Str("value", raw).
			Str("default", fmt.Sprint(def)).
			Msg("invalid environment variable, using default")
		return def
	}
	logger.Debug().
		Str("key", key).
		Str("value", fmt.Sprint(v)).
		Str("source", sourceEnv).
		Msg("using environment variable")
	return v
}

// ParseString reads a string from the environment, falling back to def.
func ParseString(key, def string) string {
	return lookupEnv(key, def, func(s string) (string, error) { return s, nil })
}

// ParseDuration reads a Go duration (e.g. "500ms") from the environment.
func ParseDuration(key string, def time.Duration) time.Duration {
	return lookupEnv(key, def, time.ParseDuration)
}

// ParseBool reads a boolean from the environment. It accepts true/false,
// 1/0 and yes/no in any case.
func ParseBool(key string, def bool) bool {
	return lookupEnv(key, def, parseBool)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
