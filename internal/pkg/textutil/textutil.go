package textutil

import (
	"strings"
	"unicode"
)

// DeriveTitle builds a session title from the first user message: collapse
// whitespace, capitalize the first rune, truncate to maxRunes at a word
// boundary with a "..." suffix.
func DeriveTitle(message string, maxRunes int) string {
	collapsed := strings.Join(strings.Fields(message), " ")
	if collapsed == "" {
		return ""
	}

	runes := []rune(collapsed)
	runes[0] = unicode.ToUpper(runes[0])

	if len(runes) <= maxRunes {
		return string(runes)
	}

	cut := string(runes[:maxRunes])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

// TruncateRunes clips s to maxRunes runes.
func TruncateRunes(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}

// BuildSnippet extracts the text around the first case-insensitive occurrence
// of query in text: from 20 runes before the match to 50 runes after its
// start, padded with "..." on each clipped side. Empty when there is no match.
func BuildSnippet(text, query string) string {
	if query == "" {
		return ""
	}

	lowerRunes := []rune(strings.ToLower(text))
	queryRunes := []rune(strings.ToLower(query))
	idx := runeIndex(lowerRunes, queryRunes)
	if idx < 0 {
		return ""
	}

	runes := []rune(text)
	start := idx - 20
	if start < 0 {
		start = 0
	}
	end := idx + 50
	if end > len(runes) {
		end = len(runes)
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(runes) {
		snippet = snippet + "..."
	}
	return snippet
}

func runeIndex(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if string(haystack[i:i+len(needle)]) == string(needle) {
			return i
		}
	}
	return -1
}

// DeriveSlug turns a title into a URL slug: lowercase, spaces to hyphens,
// strip everything outside [a-z0-9-].
func DeriveSlug(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))
	hyphenated := strings.ReplaceAll(lowered, " ", "-")

	var b strings.Builder
	for _, r := range hyphenated {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
