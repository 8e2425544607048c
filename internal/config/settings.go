// SPDX-License-Identifier: MIT

package config

import (
	"strings"
	"time"

	"github.com/exeme-project/exeme-lang/internal/render"
	"github.com/exeme-project/exeme-lang/internal/validate"
)

// Environment keys read by FromEnv.
const (
	EnvOutputDir = "EXEME_DOCS_OUT"
	EnvLogLevel  = "EXEME_DOCS_LOG_LEVEL"
	EnvLogJSON   = "EXEME_DOCS_LOG_JSON"
	EnvFormat    = "EXEME_DOCS_FORMAT"
	EnvOverlay   = "EXEME_DOCS_FILE"
	EnvDebounce  = "EXEME_DOCS_DEBOUNCE"
)

// Settings are the tool's runtime settings. Command-line flags override them.
type Settings struct {
	OutputDir string
	LogLevel  string
	LogJSON   bool
	Format    string
	Overlay   string
	Debounce  time.Duration
}

// Defaults returns the settings used when neither environment nor flags say otherwise.
func Defaults() Settings {
	return Settings{
		OutputDir: "docs",
		LogLevel:  "info",
		LogJSON:   false,
		Format:    string(render.FormatSphinx),
		Overlay:   "",
		Debounce:  500 * time.Millisecond,
	}
}

// FromEnv returns Defaults overridden by EXEME_DOCS_* environment variables.
func FromEnv() Settings {
	d := Defaults()
	return Settings{
		OutputDir: ParseString(EnvOutputDir, d.OutputDir),
		LogLevel:  strings.ToLower(ParseString(EnvLogLevel, d.LogLevel)),
		LogJSON:   ParseBool(EnvLogJSON, d.LogJSON),
		Format:    strings.ToLower(ParseString(EnvFormat, d.Format)),
		Overlay:   ParseString(EnvOverlay, d.Overlay),
		Debounce:  ParseDuration(EnvDebounce, d.Debounce),
	}
}

// Validate checks the settings. The output directory is not touched here;
// commands that write create it on demand.
func (s Settings) Validate() error {
	v := validate.New()

	v.NotEmpty("OutputDir", s.OutputDir)
	v.Custom("LogLevel", s.LogLevel, validate.LogLevel)
	v.OneOf("Format", strings.ToLower(s.Format), formatNames())
	if s.Debounce <= 0 {
		v.AddError("Debounce", "must be positive", s.Debounce)
	}

	return v.Err()
}

// PrepareOutputDir makes sure the output directory exists, creating it when
// missing. Commands that write files call it before rendering.
func (s Settings) PrepareOutputDir() error {
	v := validate.New()
	v.Directory("OutputDir", s.OutputDir, false)
	return v.Err()
}

func formatNames() []string {
	formats := render.Formats()
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return names
}
