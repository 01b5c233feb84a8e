package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"front matter title", "---\ntitle: Getting Started\ntags: [intro]\n---\n# Ignored\n", "Getting Started"},
		{"crlf delimiter", "---\r\ntitle: Windows\r\n---\r\nbody\r\n", "Windows"},
		{"heading fallback", "intro\n# Setup Guide\n## Step\n", "Setup Guide"},
		{"front matter without title", "---\nauthor: me\n---\n# From Heading\n", "From Heading"},
		{"byte order mark", "\ufeff---\ntitle: Marked\n---\n", "Marked"},
		{"invalid yaml", "---\ntitle: [oops\n---\n# Kept\n", "Kept"},
		{"nothing", "plain text\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, docTitle(tt.content))
		})
	}
}

func TestParseFrontmatter_ReturnsBody(t *testing.T) {
	fm, body := parseFrontmatter("---\ntitle: T\n---\nline one\nline two\n")
	assert.Equal(t, "T", fm.Title)
	assert.Equal(t, "line one\nline two\n", body)
}
