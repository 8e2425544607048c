// SPDX-License-Identifier: MIT

package site

import "errors"

var (
	// ErrUnknownField classifies strict YAML parse failures caused by unknown keys.
	// Use errors.Is(err, ErrUnknownField) instead of string matching.
	ErrUnknownField = errors.New("unknown site config field")

	// ErrUnsupportedFormat is returned for overlay files that are not YAML.
	ErrUnsupportedFormat = errors.New("unsupported site config format")

	// ErrEmptyFile is returned for overlay files without a document.
	ErrEmptyFile = errors.New("site config file is empty")
)
