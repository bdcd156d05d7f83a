package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		message string
		max     int
		want    string
	}{
		{
			name:    "short message",
			message: "halo apa kabar",
			max:     40,
			want:    "Halo apa kabar",
		},
		{
			name:    "collapses whitespace",
			message: "  jelaskan   tentang\tgolang  ",
			max:     40,
			want:    "Jelaskan tentang golang",
		},
		{
			name:    "empty message",
			message: "   ",
			max:     40,
			want:    "",
		},
		{
			name:    "truncates at word boundary",
			message: "tolong jelaskan cara kerja garbage collector di golang secara detail",
			max:     40,
			want:    "Tolong jelaskan cara kerja garbage...",
		},
		{
			name:    "single long word",
			message: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			max:     40,
			want:    "Aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa...",
		},
		{
			name:    "exactly max runes",
			message: "1234567890",
			max:     10,
			want:    "1234567890",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.message, tt.max))
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "hello", TruncateRunes("hello", 10))
	assert.Equal(t, "he", TruncateRunes("hello", 2))
	assert.Equal(t, "héll", TruncateRunes("héllo", 4))
}

func TestBuildSnippet(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{
			name:  "no match",
			text:  "some session preview",
			query: "golang",
			want:  "",
		},
		{
			name:  "empty query",
			text:  "anything",
			query: "",
			want:  "",
		},
		{
			name:  "match at start, short text",
			text:  "golang is a language",
			query: "golang",
			want:  "golang is a language",
		},
		{
			name:  "case insensitive match",
			text:  "I like GoLang a lot",
			query: "golang",
			want:  "I like GoLang a lot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildSnippet(tt.text, tt.query))
		})
	}

	t.Run("clipped on both sides", func(t *testing.T) {
		prefix := "0123456789012345678901234567890"    // 31 runes before the match
		suffix := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz" // well past 50
		text := prefix + "NEEDLE" + suffix

		got := BuildSnippet(text, "needle")
		assert.True(t, len(got) > 0)
		assert.Contains(t, got, "NEEDLE")
		assert.Equal(t, "...", got[:3])
		assert.Equal(t, "...", got[len(got)-3:])
	})
}

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Privacy Policy", "privacy-policy"},
		{"  Terms of Service  ", "terms-of-service"},
		{"FAQ: What's New?!", "faq-whats-new"},
		{"Already-Slugged", "already-slugged"},
		{"Número Uno", "nmero-uno"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveSlug(tt.title), "title %q", tt.title)
	}
}
