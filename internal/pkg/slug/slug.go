// Package slug derives URL-safe secondary keys from display names.
package slug

import "strings"

// Make normalizes a display name into a slug: lowercase, runs of
// non-alphanumeric characters collapse into a single '-', and leading or
// trailing separators are trimmed. "Home & Garden" becomes "home-garden".
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingSep := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('-')
			pendingSep = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
