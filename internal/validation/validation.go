// Package validation checks guestbook submissions before they reach the
// store.
package validation

import (
	"strings"
)

// Blacklist is the default profanity blacklist, a mix of Vietnamese and
// English terms. Matching is a naive case-insensitive substring check, so
// short entries match aggressively ("ngu" also matches inside longer
// words).
var Blacklist = []string{
	"dm", "dkm", "vcl", "vkl", "ngu",
	"fuck", "shit", "bitch", "bastard",
}

// ContainsProfanity reports whether text contains any blacklisted
// substring, case-insensitively.
func ContainsProfanity(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range Blacklist {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// RequireNonEmpty reports whether every value is non-empty after trimming.
func RequireNonEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
