package valueobjects

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ComputeSlug derives a CMS-safe slug from a company name: lowercase,
// diacritics folded to ASCII, runs of non-alphanumeric characters collapsed
// to single hyphens, leading and trailing hyphens trimmed.
func ComputeSlug(name string) string {
	folded := foldToASCII(name)

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// ComputeSlugWithFragment appends a short company-id fragment to the base
// slug to reduce natural collisions between similarly named companies.
func ComputeSlugWithFragment(name, fragment string) string {
	base := ComputeSlug(name)
	frag := ComputeSlug(fragment)
	if frag == "" {
		return base
	}
	if base == "" {
		return frag
	}
	return base + "-" + frag
}

func foldToASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
