// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	FieldService   = "service"
	FieldVersion   = "version"
	FieldComponent = "component"
	FieldEvent     = "event"
	FieldBuildID   = "build_id"

	// Site record fields
	FieldProject      = "project"
	FieldTheme        = "theme"
	FieldExtensions   = "extensions"
	FieldAnnouncement = "announcement"
	FieldSource       = "source"
	FieldFormat       = "format"
	FieldTarget       = "target"

	// Path fields
	FieldPath      = "path"
	FieldOutputDir = "output_dir"
	FieldBytes     = "bytes"
)
