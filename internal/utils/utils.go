package utils

import (
	"math/rand"
	"strings"
)

// CleanHTMLContent strips markdown code-fence markers the LLM tends to wrap
// documents in ("```html" and bare "```", each with an optional trailing
// newline). Everything else passes through untouched, so applying it to
// already-clean HTML is a no-op.
func CleanHTMLContent(content string) string {
	content = strings.ReplaceAll(content, "```html\n", "")
	content = strings.ReplaceAll(content, "```html", "")
	content = strings.ReplaceAll(content, "```\n", "")
	content = strings.ReplaceAll(content, "```", "")
	return content
}

// NormalizeSlug forces a candidate filename into lowercase letters, digits and
// hyphens. Whitespace and underscores become hyphens, anything else outside the
// allowed set is dropped, runs of hyphens collapse, and the result is truncated
// at a hyphen boundary so no word is cut in the middle.
func NormalizeSlug(s string, maxLen int) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case r == '-', r == ' ', r == '_', r == '\t', r == '\n':
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if maxLen > 0 && len(slug) > maxLen {
		cut := slug[:maxLen]
		// Never cut a word: back off to the last complete segment.
		if slug[maxLen] != '-' {
			if idx := strings.LastIndex(cut, "-"); idx > 0 {
				cut = cut[:idx]
			}
		}
		slug = strings.TrimSuffix(cut, "-")
	}
	return slug
}

// RandomSuffix returns a uniform 4-digit number in [1000, 9999]. Every
// generated filename gets one appended, on the AI path and the fallback path
// alike, so exact collisions stay statistically negligible.
func RandomSuffix() int {
	return 1000 + rand.Intn(9000)
}
