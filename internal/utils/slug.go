package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify converts a name into a URL-safe slug: accents are stripped,
// symbols and spaces collapse into single hyphens, and the result is
// lowercased.
func Slugify(name string) string {
	// Decompose so combining marks can be dropped.
	decomposed := norm.NFD.String(name)

	var b strings.Builder
	b.Grow(len(decomposed))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark, dropped
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
