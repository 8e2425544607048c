// SPDX-License-Identifier: MIT

package site

import (
	"fmt"

	"github.com/exeme-project/exeme-lang/internal/validate"
)

var linkSchemes = []string{"http", "https"}

// Validate checks a record before it is rendered. The built-in record always
// passes; overlays loaded with LoadFile may not.
func Validate(cfg SiteConfig) error {
	v := validate.New()

	v.NotEmpty("Project", cfg.Project)
	v.NotEmpty("Copyright", cfg.Copyright)
	v.NotEmpty("Author", cfg.Author)
	v.NotEmpty("HTMLTheme", cfg.HTMLTheme)
	v.NotEmpty("HTMLTitle", cfg.HTMLTitle)

	if len(cfg.Extensions) == 0 {
		v.AddError("Extensions", "at least one extension is required", nil)
	}
	for i, ext := range cfg.Extensions {
		v.DottedIdentifier(fmt.Sprintf("Extensions[%d]", i), ext)
	}
	v.Unique("Extensions", cfg.Extensions)

	opts := cfg.ThemeOptions
	v.URL("ThemeOptions.SourceRepository", opts.SourceRepository, linkSchemes)
	v.NotEmpty("ThemeOptions.SourceBranch", opts.SourceBranch)
	v.RelativeDir("ThemeOptions.SourceDirectory", opts.SourceDirectory)
	v.Custom("ThemeOptions.Announcement", opts.Announcement, safeMarkup)

	for i, icon := range opts.FooterIcons {
		field := fmt.Sprintf("ThemeOptions.FooterIcons[%d]", i)
		v.NotEmpty(field+".Name", icon.Name)
		v.URL(field+".URL", icon.URL, linkSchemes)
		v.Custom(field+".HTML", icon.HTML, safeMarkup)
	}

	return v.Err()
}

func safeMarkup(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("markup must be a string, got %T", value)
	}
	return checkMarkup(s)
}
