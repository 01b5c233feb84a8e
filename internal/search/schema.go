package search

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

// modelPattern matches `model Name { ... }` blocks. The body stops at the
// first closing brace, so nested braces in attributes end the block early.
var modelPattern = regexp.MustCompile(`model\s+(\w+)\s*\{([^}]+)\}`)

// ExtractModels returns the model blocks of a schema definition. Blank
// lines, // comments and @@ block attributes are dropped from the fields.
func ExtractModels(content string) []Model {
	var out []Model
	for _, m := range modelPattern.FindAllStringSubmatch(content, -1) {
		var fields []string
		for _, ln := range strings.Split(m[2], "\n") {
			ln = strings.TrimSpace(ln)
			if ln == "" || strings.HasPrefix(ln, "//") || strings.HasPrefix(ln, "@@") {
				continue
			}
			fields = append(fields, ln)
		}
		out = append(out, Model{Name: m[1], Fields: fields})
	}
	return out
}

// FormatModel renders "Name:" followed by indented field lines.
func FormatModel(m Model) string {
	return fmt.Sprintf("%s:\n  %s", m.Name, strings.Join(m.Fields, "\n  "))
}

// Models reads SchemaPath and returns a single result listing every
// model. A missing schema file yields no results.
func (s *Searcher) Models() ([]Result, error) {
	b, err := os.ReadFile(s.SchemaPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.Log.Debug().Str("schema", s.SchemaPath).Msg("schema file not found")
			return []Result{}, nil
		}
		return nil, fmt.Errorf("cannot read schema %s: %w", s.SchemaPath, err)
	}

	models := ExtractModels(string(b))
	if len(models) == 0 {
		return []Result{}, nil
	}
	blocks := make([]string, len(models))
	for i, m := range models {
		blocks[i] = FormatModel(m)
	}
	return []Result{{
		Kind:     KindCode,
		Title:    "Prisma Models",
		Content:  strings.Join(blocks, "\n\n"),
		Location: s.SchemaPath,
	}}, nil
}
