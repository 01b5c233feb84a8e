package glossary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleTerms() []Term {
	return []Term{
		{
			Term:         "REST",
			Reading:      "レスト",
			Category:     "Web",
			Description:  "HTTPの仕組みを使ってリソースを操作する設計スタイル",
			Example:      "GET /users でユーザー一覧を取得する",
			RelatedTerms: []string{"API", "HTTP"},
		},
		{
			Term:         "API",
			Reading:      "エーピーアイ",
			Category:     "Web",
			Description:  "ソフトウェア同士がやり取りするための窓口",
			Example:      "天気APIを呼び出して予報を取得する",
			RelatedTerms: []string{"REST"},
		},
		{
			Term:         "React",
			Reading:      "リアクト",
			Category:     "frontend",
			Description:  "UIを部品として組み立てるJavaScriptライブラリ",
			Example:      "function App() { return <h1>Hello</h1> }",
			RelatedTerms: []string{"JSX", "Component"},
		},
		{
			Term:         "Migration",
			Reading:      "マイグレーション",
			Category:     "Database",
			Description:  "データベースの構造変更を履歴として管理する仕組み",
			Example:      "npx prisma migrate dev",
			RelatedTerms: []string{"Schema"},
		},
	}
}

func writeGlossary(t *testing.T, terms []Term) string {
	t.Helper()
	b, err := json.Marshal(Glossary{Terms: terms})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "glossary.json")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}
