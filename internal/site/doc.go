// SPDX-License-Identifier: MIT

// Package site holds the Exeme documentation site configuration.
//
// Load returns the record consumed by the Sphinx build (docs/conf.py) and
// LoadStarlight the record behind the Astro/Starlight site. Both are built
// from literals, take no inputs and cannot fail. LoadFile reads a full
// record from a strict YAML overlay, and Holder keeps such an overlay
// current while the file changes on disk.
package site
