package glossary

import (
	"fmt"
	"strings"
)

// FormatTerm renders the full term card shown for glossary search hits.
func FormatTerm(t Term) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📚 %s (%s)\n", t.Term, t.Reading)
	fmt.Fprintf(&sb, "📁 カテゴリ: %s\n\n", t.Category)
	fmt.Fprintf(&sb, "%s\n\n", t.Description)
	fmt.Fprintf(&sb, "💡 使用例:\n%s\n\n", t.Example)
	fmt.Fprintf(&sb, "🔗 関連用語: %s", strings.Join(t.RelatedTerms, ", "))
	return strings.TrimSpace(sb.String())
}

// FormatSummary renders the short form used when listing a category.
func FormatSummary(t Term) string {
	return fmt.Sprintf("%s\n\n💡 使用例: %s", t.Description, t.Example)
}
