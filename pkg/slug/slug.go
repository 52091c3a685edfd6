// Package slug builds URL-safe post slugs from titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	spaces    = regexp.MustCompile(`\s+`)
	nonWord   = regexp.MustCompile(`[^\w-]+`)
	dashes    = regexp.MustCompile(`-{2,}`)
	validSlug = regexp.MustCompile(`^[a-z0-9_]+(?:-[a-z0-9_]+)*$`)
)

// Make lowercases title, folds accents ("Café" -> "cafe"), turns whitespace
// into '-', '&' into "-and-", drops every other non-word character and
// collapses repeated dashes.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(fold(title)))
	s = spaces.ReplaceAllString(s, "-")
	s = strings.ReplaceAll(s, "&", "-and-")
	s = nonWord.ReplaceAllString(s, "")
	s = dashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Valid reports whether s could have been produced by Make.
func Valid(s string) bool {
	return validSlug.MatchString(s)
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
