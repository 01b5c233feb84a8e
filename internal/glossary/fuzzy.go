package glossary

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/xrash/smetrics"
	"golang.org/x/text/unicode/norm"
)

// DefaultThreshold is the score above which a field value no longer counts
// as a match.
const DefaultThreshold = 0.4

const (
	// proximityDistance is how many runes away from the start of a value a
	// match may drift before the proximity penalty alone reaches 1.
	proximityDistance = 100
	// zeroScore replaces a perfect 0 so it still participates in the product.
	zeroScore = 2.220446049250313e-16
	// minScore floors every inexact hit so only whole-value equality can
	// reach zeroScore.
	minScore = 0.001
	// maxPatternRunes is the longest query run scored in one piece; longer
	// queries are split and their chunk scores averaged.
	maxPatternRunes = 32
)

// Key is one searchable field of a Term and its relative weight.
type Key struct {
	Name   string
	Weight float64
	values func(Term) []string
}

// DefaultKeys weights the term name highest, then its reading, category,
// description and related terms.
var DefaultKeys = []Key{
	{Name: "term", Weight: 2, values: func(t Term) []string { return []string{t.Term} }},
	{Name: "reading", Weight: 1.5, values: func(t Term) []string { return []string{t.Reading} }},
	{Name: "category", Weight: 1, values: func(t Term) []string { return []string{t.Category} }},
	{Name: "description", Weight: 1, values: func(t Term) []string { return []string{t.Description} }},
	{Name: "relatedTerms", Weight: 0.5, values: func(t Term) []string { return t.RelatedTerms }},
}

// Options configures an Index. Zero values select the defaults.
type Options struct {
	Keys      []Key
	Threshold float64
}

type fieldValue struct {
	ref    string
	weight float64
	norm   float64
	text   []rune
}

// Index is a fuzzy index over a fixed slice of terms. It is immutable and
// safe for concurrent use.
type Index struct {
	terms     []Term
	values    [][]fieldValue
	threshold float64
}

// NewIndex builds an index over terms.
func NewIndex(terms []Term, opts Options) *Index {
	keys := opts.Keys
	if len(keys) == 0 {
		keys = DefaultKeys
	}
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	var total float64
	for _, k := range keys {
		total += k.Weight
	}

	idx := &Index{
		terms:     terms,
		values:    make([][]fieldValue, len(terms)),
		threshold: threshold,
	}
	for i, t := range terms {
		var fvs []fieldValue
		for _, k := range keys {
			vals := k.values(t)
			for j, v := range vals {
				if strings.TrimSpace(v) == "" {
					continue
				}
				ref := k.Name
				if len(vals) > 1 || k.Name == "relatedTerms" {
					ref = fmt.Sprintf("%s[%d]", k.Name, j)
				}
				fvs = append(fvs, fieldValue{
					ref:    ref,
					weight: k.Weight / total,
					norm:   fieldNorm(v),
					text:   []rune(normalize(v)),
				})
			}
		}
		idx.values[i] = fvs
	}
	return idx
}

// Search ranks the indexed terms against query, best match first. Terms
// with no matching field are omitted. An empty query yields no matches.
func (idx *Index) Search(query string) []Match {
	q := []rune(normalize(strings.TrimSpace(query)))
	out := []Match{}
	if len(q) == 0 {
		return out
	}
	sc := newScorer()

	for i, fvs := range idx.values {
		total := 1.0
		var refs []string
		for _, fv := range fvs {
			s, ok := sc.scoreValue(q, fv.text, idx.threshold)
			if !ok {
				continue
			}
			if s == 0 {
				s = zeroScore
			}
			total *= math.Pow(s, fv.weight*fv.norm)
			refs = append(refs, fv.ref)
		}
		if len(refs) == 0 {
			continue
		}
		out = append(out, Match{Term: idx.terms[i], Score: total, Refs: refs})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}

// Search loads the glossary at path and ranks its terms against query.
func Search(path, query string) ([]Match, error) {
	g, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewIndex(g.Terms, Options{}).Search(query), nil
}

func normalize(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}

// fieldNorm damps long values: 1/sqrt(token count), rounded to 3 places.
func fieldNorm(v string) float64 {
	n := len(strings.Fields(v))
	if n == 0 {
		n = 1
	}
	return math.Round(1/math.Sqrt(float64(n))*1000) / 1000
}

// scoreValue scores q against text. A value equal to the query scores 0.
// Otherwise each chunk of at most maxPatternRunes runes is scored as the
// error rate of its closest window plus a proximity penalty for the window
// offset, floored at minScore, and the chunk scores are averaged. Chunks
// without a window inside threshold score 1. The value matches when any
// chunk does.
func (sc *scorer) scoreValue(q, text []rune, threshold float64) (float64, bool) {
	if runesEqual(q, text) {
		return 0, true
	}

	var total float64
	matched := false
	chunks := 0
	for start := 0; start < len(q); start += maxPatternRunes {
		chunk := q[start:min(start+maxPatternRunes, len(q))]
		chunks++
		s, ok := sc.scoreChunk(chunk, text, threshold)
		if !ok {
			total++
			continue
		}
		matched = true
		total += max(minScore, s)
	}
	return total / float64(chunks), matched
}

func (sc *scorer) scoreChunk(q, text []rune, threshold float64) (float64, bool) {
	m := len(q)
	best := math.Inf(1)

	if p := runeIndex(text, q); p >= 0 {
		best = float64(p) / proximityDistance
	}

	maxErrors := int(threshold * float64(m))
	if maxErrors > 0 {
		maxOffset := int(threshold * proximityDistance)
		lo, hi := max(1, m-maxErrors), m+maxErrors
		for p := 0; p <= maxOffset && p+lo <= len(text); p++ {
			// later windows cannot beat best on proximity alone
			if float64(p)/proximityDistance >= best {
				break
			}
			e := sc.windowDistance(q, text[p:min(p+hi, len(text))], lo)
			if e > maxErrors {
				continue
			}
			if s := float64(e)/float64(m) + float64(p)/proximityDistance; s < best {
				best = s
			}
		}
		// values shorter than the query are compared whole
		if len(text) < m {
			if e := sc.editDistance(q, text); e <= maxErrors {
				if s := float64(e) / float64(m); s < best {
					best = s
				}
			}
		}
	}

	return best, best <= threshold
}

// windowDistance is the smallest edit distance between q and a prefix of
// text at least lo runes long. One pass fills the DP column by column so
// every prefix length is covered at once.
func (sc *scorer) windowDistance(q, text []rune, lo int) int {
	m := len(q)
	col := sc.column(m + 1)
	for i := range col {
		col[i] = i
	}
	best := math.MaxInt
	for j := 1; j <= len(text); j++ {
		diag := col[0]
		col[0] = j
		for i := 1; i <= m; i++ {
			cost := 1
			if q[i-1] == text[j-1] {
				cost = 0
			}
			up := col[i]
			col[i] = min(col[i]+1, col[i-1]+1, diag+cost)
			diag = up
		}
		if j >= lo && col[m] < best {
			best = col[m]
		}
	}
	return best
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func runeIndex(text, q []rune) int {
	for p := 0; p+len(q) <= len(text); p++ {
		if runesEqual(text[p:p+len(q)], q) {
			return p
		}
	}
	return -1
}

// scorer holds buffers reused across the values of one search. It is not
// safe for concurrent use; each Search call gets its own.
type scorer struct {
	alphabet map[rune]byte
	buf      []int
}

func newScorer() *scorer {
	return &scorer{alphabet: make(map[rune]byte, 64)}
}

func (sc *scorer) column(n int) []int {
	if cap(sc.buf) < n {
		sc.buf = make([]int, n)
	}
	return sc.buf[:n]
}

// editDistance is the Levenshtein distance between a and b counted in runes.
// smetrics compares bytes, so both sides are first mapped onto a shared
// single-byte alphabet. Pairs with more distinct runes than fit in a byte
// fall back to a rune-level DP.
func (sc *scorer) editDistance(a, b []rune) int {
	clear(sc.alphabet)
	ea, okA := sc.encode(a)
	eb, okB := sc.encode(b)
	if !okA || !okB {
		return sc.runeDistance(a, b)
	}
	return smetrics.WagnerFischer(ea, eb, 1, 1, 1)
}

func (sc *scorer) encode(rs []rune) (string, bool) {
	buf := make([]byte, len(rs))
	for i, r := range rs {
		c, ok := sc.alphabet[r]
		if !ok {
			if len(sc.alphabet) > 255 {
				return "", false
			}
			c = byte(len(sc.alphabet))
			sc.alphabet[r] = c
		}
		buf[i] = c
	}
	return string(buf), true
}

func (sc *scorer) runeDistance(a, b []rune) int {
	col := sc.column(len(a) + 1)
	for i := range col {
		col[i] = i
	}
	for j := 1; j <= len(b); j++ {
		diag := col[0]
		col[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			up := col[i]
			col[i] = min(col[i]+1, col[i-1]+1, diag+cost)
			diag = up
		}
	}
	return col[len(a)]
}
