package slug

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// Make derives a URL slug from a display name: lowercased, with every run of
// whitespace collapsed into a single hyphen.
func Make(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// Normalize cleans a slug supplied by a client. Empty input yields "".
func Normalize(s string) string {
	return Make(s)
}

// FromOptional returns the normalized explicit slug when one is given,
// otherwise the slug derived from name.
func FromOptional(explicit, name string) string {
	if s := Normalize(explicit); s != "" {
		return s
	}
	return Make(name)
}
