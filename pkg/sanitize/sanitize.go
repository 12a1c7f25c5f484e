// Package sanitize strips HTML markup from free-text form input before it is
// embedded in generated content, preventing tag injection into the
// notification email.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Strip removes every HTML tag from s, decodes the entities bluemonday
// escaped back to plain text and trims surrounding whitespace.
func Strip(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
