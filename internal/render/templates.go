// SPDX-License-Identifier: MIT

package render

import "text/template"

const header = "Generated by exeme-docs. DO NOT EDIT."

var sphinxTemplate = template.Must(template.New("conf.py").Funcs(funcMap()).Parse(`# ` + header + `
project = {{ pystr .Site.Project }}
copyright = {{ pystr .Site.Copyright }}
author = {{ pystr .Site.Author }}

html_theme = {{ pystr .Site.HTMLTheme }}
{{- with .Site.ThemeOptions }}
html_theme_options = {
    "announcement": {{ pystr .Announcement }},
    "footer_icons": [
{{- range .FooterIcons }}
        {
            "name": {{ pystr .Name }},
            "url": {{ pystr .URL }},
            "html": {{ pystr .HTML }},
            "class": {{ pystr .Class }},
        },
{{- end }}
    ],
    "source_repository": {{ pystr .SourceRepository }},
    "source_branch": {{ pystr .SourceBranch }},
    "source_directory": {{ pystr .SourceDirectory }},
    "navigation_with_keys": {{ pybool .NavigationWithKeys }},
}
{{- end }}
html_title = {{ if eq .Site.HTMLTitle .Site.Project }}project{{ else }}{{ pystr .Site.HTMLTitle }}{{ end }}

extensions = [
{{- range .Site.Extensions }}
    {{ pystr . }},
{{- end }}
]
`))

var starlightTemplate = template.Must(template.New("astro.config.mjs").Funcs(funcMap()).Parse(`// ` + header + `
import starlight from '@astrojs/starlight';
import {defineConfig} from 'astro/config';

{{- with .Starlight }}

export default defineConfig({
  site: {{ toJson .Site }},
  base: {{ toJson .Base }},
  integrations: [
    starlight({
      title: {{ toJson .Title }},
      customCss: [
{{- range .CustomCSS }}
        {{ toJson . }},
{{- end }}
      ],
      logo: {
        src: {{ toJson .Logo }},
      },
      social: {
{{- $social := .Social }}
{{- range .SocialNames }}
        {{ toJson . }}: {{ index $social . | toJson }},
{{- end }}
      },
      sidebar: [
{{- range .Sidebar }}
        {
          label: {{ toJson .Label }},
          autogenerate: {directory: {{ toJson .Directory }}},
        },
{{- end }}
      ],
      editLink: {
        baseUrl: {{ toJson .EditLink }},
      },
      lastUpdated: {{ .LastUpdated }},
      pagination: {{ .Pagination }},
      favicon: {{ toJson .Favicon }},
    }),
  ],
});
{{- end }}
`))
