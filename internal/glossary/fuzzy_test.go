package glossary

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_ExactTermIsTopMatch(t *testing.T) {
	path := writeGlossary(t, sampleTerms())

	matches, err := Search(path, "api")
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "API", matches[0].Term.Term)
	assert.Contains(t, matches[0].Refs, "term")
}

func TestSearch_ResultsAscendByScore(t *testing.T) {
	idx := NewIndex(sampleTerms(), Options{})

	for _, q := range []string{"api", "rest", "http", "web", "react"} {
		matches := idx.Search(q)
		require.NotEmpty(t, matches, "query %q", q)
		assert.True(t, sort.SliceIsSorted(matches, func(i, j int) bool {
			return matches[i].Score < matches[j].Score
		}), "query %q not sorted", q)
		for _, m := range matches {
			assert.GreaterOrEqual(t, m.Score, 0.0)
			assert.LessOrEqual(t, m.Score, 1.0)
		}
	}
}

func TestSearch_RelatedTermRanksBelowName(t *testing.T) {
	idx := NewIndex(sampleTerms(), Options{})

	matches := idx.Search("api")
	require.GreaterOrEqual(t, len(matches), 2)
	assert.Equal(t, "API", matches[0].Term.Term)
	assert.Equal(t, "REST", matches[1].Term.Term)
	assert.Contains(t, matches[1].Refs, "relatedTerms[0]")
}

func TestSearch_ToleratesTypos(t *testing.T) {
	idx := NewIndex(sampleTerms(), Options{})

	matches := idx.Search("Reakt")
	require.NotEmpty(t, matches)
	assert.Equal(t, "React", matches[0].Term.Term)
}

func TestSearch_MatchesReading(t *testing.T) {
	idx := NewIndex(sampleTerms(), Options{})

	matches := idx.Search("マイグレーション")
	require.NotEmpty(t, matches)
	assert.Equal(t, "Migration", matches[0].Term.Term)
}

func TestSearch_NormalizesFullWidth(t *testing.T) {
	idx := NewIndex(sampleTerms(), Options{})

	matches := idx.Search("ＡＰＩ")
	require.NotEmpty(t, matches)
	assert.Equal(t, "API", matches[0].Term.Term)
}

func TestSearch_NoMatch(t *testing.T) {
	idx := NewIndex(sampleTerms(), Options{})
	assert.Empty(t, idx.Search("zzzzqqqq"))
}

func TestSearch_EmptyQuery(t *testing.T) {
	idx := NewIndex(sampleTerms(), Options{})
	assert.Empty(t, idx.Search("   "))
}

func TestSearch_MissingGlossaryPropagatesError(t *testing.T) {
	_, err := Search(t.TempDir()+"/missing.json", "api")
	assert.Error(t, err)
}

func TestSearch_WholeValueEqualityBeatsPrefix(t *testing.T) {
	terms := []Term{
		{Term: "WebSocket", Reading: "ウェブソケット", Category: "Protocol", Description: "双方向通信の仕組み", RelatedTerms: []string{"HTTP"}},
		{Term: "HTML", Reading: "エイチティーエムエル", Category: "Web", Description: "ページの構造を書く言語", RelatedTerms: []string{"CSS"}},
	}
	idx := NewIndex(terms, Options{})

	matches := idx.Search("web")
	require.Len(t, matches, 2)
	assert.Equal(t, "HTML", matches[0].Term.Term)
	assert.Equal(t, "WebSocket", matches[1].Term.Term)
	assert.InDelta(t, 0.1, matches[1].Score, 0.001)
}

func TestScoreValue_FloorsInexactHits(t *testing.T) {
	sc := newScorer()

	s, ok := sc.scoreValue([]rune("web"), []rune("web"), DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, 0.0, s)

	s, ok = sc.scoreValue([]rune("web"), []rune("websocket"), DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, minScore, s)
}

func TestScoreValue_AveragesLongQueryChunks(t *testing.T) {
	sc := newScorer()
	text := []rune(strings.Repeat("a", 32))
	q := []rune(strings.Repeat("a", 32) + strings.Repeat("z", 32))

	s, ok := sc.scoreValue(q, text, DefaultThreshold)
	assert.True(t, ok)
	// first chunk is an exact hit, second matches nothing
	assert.InDelta(t, (minScore+1)/2, s, 1e-9)
}

func TestSearch_LongQueryIsFast(t *testing.T) {
	desc := strings.Repeat("データベースの構造変更を履歴として管理する仕組み。", 10)
	terms := make([]Term, 100)
	for i := range terms {
		terms[i] = Term{Term: "Migration", Reading: "マイグレーション", Category: "Database", Description: desc, RelatedTerms: []string{"Schema"}}
	}
	idx := NewIndex(terms, Options{})
	query := strings.Repeat("スキーマの変更履歴を管理する方法", 8)

	start := time.Now()
	idx.Search(query)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestEditDistance_CountsRunes(t *testing.T) {
	sc := newScorer()
	assert.Equal(t, 0, sc.editDistance([]rune("リアクト"), []rune("リアクト")))
	assert.Equal(t, 1, sc.editDistance([]rune("リアクト"), []rune("リアクド")))
	assert.Equal(t, 1, sc.editDistance([]rune("react"), []rune("reakt")))
}

func TestEditDistance_WideAlphabetStaysRuneLevel(t *testing.T) {
	sc := newScorer()
	a := make([]rune, 300)
	for i := range a {
		a[i] = rune(0x4E00 + i)
	}
	b := append([]rune{}, a...)
	b[0] = 'x'

	assert.Equal(t, 1, sc.editDistance(a, b))
	assert.Equal(t, 1, sc.runeDistance([]rune("あいう"), []rune("あいえ")))
}

func TestWindowDistance_BestPrefix(t *testing.T) {
	sc := newScorer()
	assert.Equal(t, 0, sc.windowDistance([]rune("rest"), []rune("restful"), 3))
	assert.Equal(t, 1, sc.windowDistance([]rune("reakt"), []rune("react app"), 4))
}

func TestFieldNorm(t *testing.T) {
	assert.Equal(t, 1.0, fieldNorm("API"))
	assert.Equal(t, 0.707, fieldNorm("two words"))
	assert.Equal(t, 1.0, fieldNorm(""))
}
