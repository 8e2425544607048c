// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ErrInvalidLogLevel is reported for level names the logger would not accept.
var ErrInvalidLogLevel = &Error{
	Field:   "logLevel",
	Message: "invalid log level (must be: trace, debug, info, warn, error, fatal, panic, disabled)",
}

// LogLevel checks a log level name against the levels zerolog parses, so
// settings validation and the logger agree. It fits Validator.Custom.
func LogLevel(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("log level must be a string, got %T", value)
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ErrInvalidLogLevel
	}
	if _, err := zerolog.ParseLevel(s); err != nil {
		return ErrInvalidLogLevel
	}
	return nil
}
