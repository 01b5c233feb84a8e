package search

import (
	"fmt"
	"strings"
)

// MaxShownLines caps how many matched lines FormatMatches prints per file.
const MaxShownLines = 5

// Grep returns every line of content that contains query, ignoring case.
func Grep(content, query string) []LineMatch {
	q := strings.ToLower(query)
	var out []LineMatch
	for i, ln := range strings.Split(content, "\n") {
		if strings.Contains(strings.ToLower(ln), q) {
			out = append(out, LineMatch{Line: i + 1, Text: ln})
		}
	}
	return out
}

// FormatMatches renders the first MaxShownLines matches as "  N: text" and
// summarises the rest as "  ... 他 K 件".
func FormatMatches(matches []LineMatch) string {
	shown := matches
	if len(shown) > MaxShownLines {
		shown = shown[:MaxShownLines]
	}
	lines := make([]string, 0, len(shown)+1)
	for _, m := range shown {
		lines = append(lines, fmt.Sprintf("  %d: %s", m.Line, strings.TrimSpace(m.Text)))
	}
	if rest := len(matches) - MaxShownLines; rest > 0 {
		lines = append(lines, fmt.Sprintf("  ... 他 %d 件", rest))
	}
	return "\n" + strings.Join(lines, "\n")
}
