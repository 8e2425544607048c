// SPDX-License-Identifier: MIT

// Package render turns site records into the files documentation tools read:
// a Sphinx conf.py, a Starlight astro.config.mjs, or plain JSON and YAML.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/exeme-project/exeme-lang/internal/site"
	"gopkg.in/yaml.v3"
)

// Format names an output format.
type Format string

const (
	FormatSphinx    Format = "sphinx"
	FormatStarlight Format = "starlight"
	FormatJSON      Format = "json"
	FormatYAML      Format = "yaml"
)

// ErrUnknownFormat is returned for format names outside Formats().
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatSphinx, FormatStarlight, FormatJSON, FormatYAML}
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Input is everything a rendering may draw on.
type Input struct {
	Site      site.SiteConfig
	Starlight site.StarlightConfig
}

// DefaultInput returns the built-in records.
func DefaultInput() Input {
	return Input{Site: site.Load(), Starlight: site.LoadStarlight()}
}

// Render writes the rendering of in as format f to w. JSON and YAML encode
// the Sphinx record only.
func Render(w io.Writer, f Format, in Input) error {
	switch f {
	case FormatSphinx:
		return sphinxTemplate.Execute(w, in)
	case FormatStarlight:
		return starlightTemplate.Execute(w, in)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(in.Site)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(in.Site); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Bytes renders into memory.
func Bytes(f Format, in Input) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, f, in); err != nil {
		return nil, fmt.Errorf("render %s: %w", f, err)
	}
	return buf.Bytes(), nil
}
