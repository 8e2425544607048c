// SPDX-License-Identifier: MIT

package site

import (
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Clone returns an alias-free deep copy of the record.
func Clone(in SiteConfig) SiteConfig {
	out := in
	out.Extensions = slices.Clone(in.Extensions)
	out.ThemeOptions.FooterIcons = slices.Clone(in.ThemeOptions.FooterIcons)
	return out
}

// nil and empty slices describe the same record.
var recordOpts = cmp.Options{cmpopts.EquateEmpty()}

// Equal reports whether two records are equal field by field.
func Equal(a, b SiteConfig) bool {
	return cmp.Equal(a, b, recordOpts)
}

// Diff returns a human-readable diff (-want +got). An empty string means equal.
func Diff(want, got SiteConfig) string {
	return cmp.Diff(want, got, recordOpts)
}
