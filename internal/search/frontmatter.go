package search

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// docFrontmatter is the subset of markdown front matter shown in listings.
type docFrontmatter struct {
	Title string `yaml:"title"`
}

// parseFrontmatter separates a leading "---" delimited YAML block from the
// markdown body. Documents without a well-formed block come back unchanged
// with an empty header.
func parseFrontmatter(content string) (docFrontmatter, string) {
	var fm docFrontmatter
	s := strings.TrimPrefix(content, "\ufeff")
	rest, ok := strings.CutPrefix(s, "---\n")
	if !ok {
		rest, ok = strings.CutPrefix(s, "---\r\n")
	}
	if !ok {
		return fm, content
	}
	header, body, ok := strings.Cut(rest, "\n---")
	if !ok {
		return fm, content
	}
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return docFrontmatter{}, content
	}
	// drop the remainder of the closing delimiter line
	if _, after, found := strings.Cut(body, "\n"); found {
		body = after
	} else {
		body = ""
	}
	return fm, body
}

// docTitle picks a display title: the front-matter title if set, else the
// first level-one heading.
func docTitle(content string) string {
	fm, body := parseFrontmatter(content)
	if t := strings.TrimSpace(fm.Title); t != "" {
		return t
	}
	for _, ln := range strings.Split(body, "\n") {
		ln = strings.TrimSpace(ln)
		if h, ok := strings.CutPrefix(ln, "# "); ok {
			return strings.TrimSpace(h)
		}
	}
	return ""
}
