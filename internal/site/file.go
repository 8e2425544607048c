// SPDX-License-Identifier: MIT

package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a full site record from a YAML file with strict parsing.
// Unknown keys fail with ErrUnknownField. A missing html_title is derived
// from the project name, matching the built-in record.
func LoadFile(path string) (SiteConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return SiteConfig{}, fmt.Errorf("%w: %q (only YAML supported)", ErrUnsupportedFormat, ext)
	}

	// #nosec G304 -- overlay paths are provided by the operator via CLI flags
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("read file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a single strict YAML document into a site record.
func Parse(data []byte) (SiteConfig, error) {
	var cfg SiteConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return SiteConfig{}, ErrEmptyFile
		}
		if isUnknownFieldError(err) {
			return SiteConfig{}, fmt.Errorf("%w: %v", ErrUnknownField, err)
		}
		return SiteConfig{}, fmt.Errorf("strict config parse error: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return SiteConfig{}, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	// A bare null or {} document decodes without error but carries no record.
	if Equal(cfg, SiteConfig{}) {
		return SiteConfig{}, ErrEmptyFile
	}

	if strings.TrimSpace(cfg.HTMLTitle) == "" {
		cfg.HTMLTitle = cfg.Project
	}
	return cfg, nil
}

// yaml.v3 reports unknown keys as "field X not found in type Y".
func isUnknownFieldError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "field") && strings.Contains(msg, "not found")
}
