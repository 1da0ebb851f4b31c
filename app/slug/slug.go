// Package slug derives URL-safe post identifiers from titles.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes characters and drops the combining marks, so "é"
// becomes "e" before the ASCII filter runs.
var deaccent = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// turkish maps the letters NFKD leaves alone. İ must fold to plain "i"
// before lowercasing, otherwise Unicode case rules produce "i̇".
var turkish = strings.NewReplacer(
	"ğ", "g", "Ğ", "g",
	"ü", "u", "Ü", "u",
	"ş", "s", "Ş", "s",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ç", "c", "Ç", "c",
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Make turns a title into its base slug: lowercase ASCII words joined by
// single hyphens. The result can be empty for titles with no usable
// characters.
func Make(title string) string {
	s := turkish.Replace(title)
	if folded, _, err := transform.String(deaccent, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return s
}

// Assign returns a slug for title that does not collide with any slug in
// existing. Unusable titles fall back to a timestamp-derived slug; collisions
// get the first free numeric suffix (-2, -3, ...).
func Assign(title string, existing map[string]bool) string {
	base := Make(title)
	if base == "" {
		base = fmt.Sprintf("post-%d", time.Now().UnixMilli())
	}

	candidate := base
	for i := 2; existing[candidate]; i++ {
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return candidate
}
