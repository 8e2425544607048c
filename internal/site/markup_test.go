// SPDX-License-Identifier: MIT

package site

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnouncementText(t *testing.T) {
	got := Load().ThemeOptions.AnnouncementText()
	assert.Equal(t, "Important: Exeme is in the alpha stages of development, and this documentation is not finished!", got)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "a b", PlainText("<p>a</p>\n\n<p>b</p>"))
	assert.Equal(t, "", PlainText(`<svg><path d="M0 0"></path></svg>`))
	assert.Equal(t, "Tom & Jerry", PlainText("<b>Tom &amp; Jerry</b>"))
}

func TestCheckMarkup(t *testing.T) {
	tests := []struct {
		name    string
		markup  string
		wantErr bool
	}{
		{"announcement", Load().ThemeOptions.Announcement, false},
		{"github icon", Load().ThemeOptions.FooterIcons[0].HTML, false},
		{"plain text", "just text", false},
		{"empty", "", false},
		{"script", "<em>hi</em><script>alert(1)</script>", true},
		{"uppercase script", "<SCRIPT>alert(1)</SCRIPT>", true},
		{"iframe", `<iframe src="https://example.com"></iframe>`, true},
		{"event handler", `<svg onload="steal()"></svg>`, true},
		{"javascript href", `<a href=" JavaScript:void(0)">x</a>`, true},
		{"self closing link", `<link rel="stylesheet" href="x.css"/>`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkMarkup(tt.markup)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errUnsafeMarkup), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
