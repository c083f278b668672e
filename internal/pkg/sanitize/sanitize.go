// Package sanitize strips markup from user generated content before it
// is persisted. Titles, descriptions and chat messages are plain text;
// anything that looks like HTML is removed, not escaped.
package sanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Strict removes all HTML from s and unescapes the surviving entities
// so plain text like "2 & 3" round-trips unchanged.
func Strict(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}
