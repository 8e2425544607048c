// SPDX-License-Identifier: MIT

package site

import "slices"

// StarlightConfig is the record behind the Astro/Starlight documentation site.
type StarlightConfig struct {
	Site        string            `yaml:"site" json:"site"`
	Base        string            `yaml:"base" json:"base"`
	Title       string            `yaml:"title" json:"title"`
	CustomCSS   []string          `yaml:"customCss" json:"customCss"`
	Logo        string            `yaml:"logo" json:"logo"`
	Social      map[string]string `yaml:"social" json:"social"`
	Sidebar     []SidebarGroup    `yaml:"sidebar" json:"sidebar"`
	EditLink    string            `yaml:"editLink" json:"editLink"`
	LastUpdated bool              `yaml:"lastUpdated" json:"lastUpdated"`
	Pagination  bool              `yaml:"pagination" json:"pagination"`
	Favicon     string            `yaml:"favicon" json:"favicon"`
}

// SidebarGroup is a sidebar section whose entries are generated from a content directory.
type SidebarGroup struct {
	Label     string `yaml:"label" json:"label"`
	Directory string `yaml:"directory" json:"directory"`
}

// LoadStarlight returns the Starlight site record. Like Load it is built from
// literals and shares its repository and source directory.
func LoadStarlight() StarlightConfig {
	sphinx := Load()
	opts := sphinx.ThemeOptions
	return StarlightConfig{
		Site:  "https://exeme-project.github.io",
		Base:  "/exeme-lang",
		Title: "The Exeme Language",
		CustomCSS: []string{
			"@fontsource/noto-sans/400.css",
			"@fontsource/noto-sans/600.css",
			"./src/styles/custom.css",
		},
		Logo: "./src/assets/logo.png",
		Social: map[string]string{
			"github": repository,
		},
		Sidebar: []SidebarGroup{
			{Label: "Guides", Directory: "guides"},
			{Label: "Language Specification", Directory: "language-specification"},
		},
		EditLink:    opts.SourceRepository + "edit/" + opts.SourceBranch + "/" + opts.SourceDirectory,
		LastUpdated: true,
		Pagination:  true,
		Favicon:     "./src/assets/logo.png",
	}
}

// SocialNames returns the social link keys in sorted order.
func (s StarlightConfig) SocialNames() []string {
	names := make([]string, 0, len(s.Social))
	for name := range s.Social {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
