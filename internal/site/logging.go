// SPDX-License-Identifier: MIT

package site

import (
	xglog "github.com/exeme-project/exeme-lang/internal/log"
	"github.com/rs/zerolog"
)

// BuiltInSource names the compiled-in record in logs.
const BuiltInSource = "built-in"

// MarshalZerologObject adds the record's identifying fields to a log event.
// The announcement is logged as plain text.
func (c SiteConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str(xglog.FieldProject, c.Project).
		Str(xglog.FieldTheme, c.HTMLTheme).
		Int(xglog.FieldExtensions, len(c.Extensions)).
		Str(xglog.FieldAnnouncement, c.ThemeOptions.AnnouncementText())
}

// LogLoaded emits the site.loaded event. An empty source means the built-in record.
func LogLoaded(logger zerolog.Logger, source string, cfg SiteConfig) {
	if source == "" {
		source = BuiltInSource
	}
	logger.Info().
		Str(xglog.FieldEvent, "site.loaded").
		Str(xglog.FieldSource, source).
		EmbedObject(cfg).
		Msg("site config loaded")
}
