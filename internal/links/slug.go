package links

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	disallowedPattern = regexp.MustCompile(`[^a-z0-9\s-]`)
	separatorPattern  = regexp.MustCompile(`[\s_]+`)
)

// GenerateSlug normalizes a display name into a URL-safe token: diacritics
// are stripped via NFD decomposition, the result is lowercased and reduced
// to [a-z0-9-], and runs of whitespace or underscores collapse to single
// hyphens. An empty result falls back to "link".
func GenerateSlug(name string) string {
	decomposed := norm.NFD.String(strings.ToLower(name))

	// Drop combining marks and anything outside ASCII. Letters that do not
	// decompose (like the Vietnamese đ) are dropped entirely rather than
	// transliterated.
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if r < 128 {
			b.WriteRune(r)
		}
	}

	slug := separatorPattern.ReplaceAllString(b.String(), "-")
	slug = disallowedPattern.ReplaceAllString(slug, "")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "link"
	}
	return slug
}
