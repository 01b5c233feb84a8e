package glossary

import (
	"sort"
	"strings"
)

// Categories returns the distinct categories of g, sorted.
func Categories(g *Glossary) []string {
	seen := make(map[string]struct{}, len(g.Terms))
	out := make([]string, 0, len(g.Terms))
	for _, t := range g.Terms {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	sort.Strings(out)
	return out
}

// FilterByCategory returns the terms whose category equals name, ignoring case.
func FilterByCategory(g *Glossary, name string) []Term {
	out := []Term{}
	for _, t := range g.Terms {
		if strings.EqualFold(t.Category, name) {
			out = append(out, t)
		}
	}
	return out
}
