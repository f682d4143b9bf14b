// Package greeting formats the welcome message returned by the greet endpoint.
package greeting

import (
	"errors"
	"strings"
	"unicode"
)

// ErrMissingName is returned when the name is absent, empty or only whitespace.
var ErrMissingName = errors.New("name is required")

// Greet trims name and returns the welcome message for it.
// The name is used verbatim; callers rendering it as HTML must escape it.
func Greet(name string) (string, error) {
	name = strings.TrimFunc(name, isSpace)
	if name == "" {
		return "", ErrMissingName
	}
	return "Hello, " + name + "! Welcome to the app.", nil
}

// isSpace reports whitespace, including the ASCII file, group, record and
// unit separators (U+001C to U+001F) that unicode.IsSpace leaves out.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
