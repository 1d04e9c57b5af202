// Package slug derives and validates URL-safe identifiers.
package slug

import (
	"regexp"
	"strings"
)

var (
	pattern    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]+`)
	edgeHyphen = regexp.MustCompile(`(^-+|-+$)`)
)

// Derive builds a slug from a title or name: lowercase, runs of
// non-alphanumeric characters collapse to a single hyphen, leading and
// trailing hyphens are trimmed.
func Derive(title string) string {
	s := strings.ToLower(title)
	s = nonAlnum.ReplaceAllString(s, "-")
	return edgeHyphen.ReplaceAllString(s, "")
}

// Valid reports whether s matches the slug pattern [a-z0-9]+(-[a-z0-9]+)*.
func Valid(s string) bool {
	return pattern.MatchString(s)
}
