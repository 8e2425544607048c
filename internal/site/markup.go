// SPDX-License-Identifier: MIT

package site

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	xhtml "golang.org/x/net/html"
)

var textPolicy = bluemonday.StrictPolicy()

// AnnouncementText returns the announcement banner with all markup removed
// and whitespace collapsed, for logs and plain-text summaries.
func (o ThemeOptions) AnnouncementText() string {
	return PlainText(o.Announcement)
}

// PlainText strips markup from an HTML fragment.
func PlainText(fragment string) string {
	stripped := html.UnescapeString(textPolicy.Sanitize(fragment))
	return strings.Join(strings.Fields(stripped), " ")
}

var forbiddenElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"iframe":   {},
	"object":   {},
	"embed":    {},
	"link":     {},
	"meta":     {},
	"base":     {},
	"form":     {},
	"noscript": {},
}

var errUnsafeMarkup = errors.New("unsafe markup")

// checkMarkup rejects fragments that would run code in the rendered page:
// active elements, inline event handlers and javascript: URLs.
func checkMarkup(fragment string) error {
	z := xhtml.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return nil
			}
			return fmt.Errorf("parse markup: %w", z.Err())
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			tok := z.Token()
			name := strings.ToLower(tok.Data)
			if _, bad := forbiddenElements[name]; bad {
				return fmt.Errorf("%w: <%s> element", errUnsafeMarkup, name)
			}
			for _, attr := range tok.Attr {
				key := strings.ToLower(attr.Key)
				if strings.HasPrefix(key, "on") {
					return fmt.Errorf("%w: %s handler on <%s>", errUnsafeMarkup, key, name)
				}
				val := strings.ToLower(strings.TrimSpace(attr.Val))
				if strings.HasPrefix(val, "javascript:") {
					return fmt.Errorf("%w: javascript URL in %s", errUnsafeMarkup, key)
				}
			}
		}
	}
}
