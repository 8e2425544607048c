// SPDX-License-Identifier: MIT

// Package config holds the runtime settings of the exeme-docs tool itself:
// where output goes, how it is logged and how overlays are watched. The
// documentation site record lives in package site.
package config
