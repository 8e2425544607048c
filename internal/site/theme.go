// SPDX-License-Identifier: MIT

package site

// ThemeOptions are the presentation settings handed to the Furo theme.
type ThemeOptions struct {
	Announcement       string       `yaml:"announcement" json:"announcement"`
	FooterIcons        []FooterIcon `yaml:"footer_icons" json:"footer_icons"`
	SourceRepository   string       `yaml:"source_repository" json:"source_repository"`
	SourceBranch       string       `yaml:"source_branch" json:"source_branch"`
	SourceDirectory    string       `yaml:"source_directory" json:"source_directory"`
	NavigationWithKeys bool         `yaml:"navigation_with_keys" json:"navigation_with_keys"`
}

// FooterIcon describes one icon link in the page footer. It always encodes
// exactly four keys, including an empty class.
type FooterIcon struct {
	Name  string `yaml:"name" json:"name"`
	URL   string `yaml:"url" json:"url"`
	HTML  string `yaml:"html" json:"html"`
	Class string `yaml:"class" json:"class"`
}

// Option names as the theme reads them.
const (
	OptionAnnouncement       = "announcement"
	OptionFooterIcons        = "footer_icons"
	OptionSourceRepository   = "source_repository"
	OptionSourceBranch       = "source_branch"
	OptionSourceDirectory    = "source_directory"
	OptionNavigationWithKeys = "navigation_with_keys"
)

// OptionNames lists the theme option names in the order they are rendered.
func OptionNames() []string {
	return []string{
		OptionAnnouncement,
		OptionFooterIcons,
		OptionSourceRepository,
		OptionSourceBranch,
		OptionSourceDirectory,
		OptionNavigationWithKeys,
	}
}

// Map returns the options as the option-name to value mapping the theme consumes.
// Footer icons become a slice of four-key maps.
func (o ThemeOptions) Map() map[string]any {
	icons := make([]map[string]any, 0, len(o.FooterIcons))
	for _, icon := range o.FooterIcons {
		icons = append(icons, icon.Map())
	}
	return map[string]any{
		OptionAnnouncement:       o.Announcement,
		OptionFooterIcons:        icons,
		OptionSourceRepository:   o.SourceRepository,
		OptionSourceBranch:       o.SourceBranch,
		OptionSourceDirectory:    o.SourceDirectory,
		OptionNavigationWithKeys: o.NavigationWithKeys,
	}
}

// Map returns the descriptor as a name/url/html/class mapping.
func (i FooterIcon) Map() map[string]any {
	return map[string]any{
		"name":  i.Name,
		"url":   i.URL,
		"html":  i.HTML,
		"class": i.Class,
	}
}
