// Package search implements grep-style document and code search, the
// best-effort route and schema extractors, and the merged search that fans
// out to the glossary, documents and code.
package search

import (
	"context"
	"path"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kamusis/devguide/internal/glossary"
)

const (
	DefaultDocPattern   = "**/*.md"
	DefaultCodePattern  = "**/*.{ts,js,tsx,jsx}"
	DefaultRoutePattern = "**/*.{ts,js}"
)

// Searcher holds the resolved locations of every data source. All paths
// are absolute; SrcLabel is the prefix shown in code result titles.
type Searcher struct {
	GlossaryPath string
	DocsDir      string
	SrcDir       string
	SrcLabel     string
	CodePattern  string
	RoutePattern string
	SchemaPath   string
	Log          zerolog.Logger
}

// Terms runs the fuzzy glossary search. A missing or malformed glossary
// file is returned as an error.
func (s *Searcher) Terms(ctx context.Context, query string) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	matches, err := glossary.Search(s.GlossaryPath, query)
	if err != nil {
		return nil, err
	}
	s.Log.Debug().Str("glossary", s.GlossaryPath).Int("matches", len(matches)).
		Dur("took", time.Since(start)).Msg("glossary searched")

	out := make([]Result, 0, len(matches))
	for _, m := range matches {
		score := m.Score
		out = append(out, Result{
			Kind:    KindTerm,
			Title:   m.Term.Term,
			Content: glossary.FormatTerm(m.Term),
			Score:   &score,
		})
	}
	return out, nil
}

// Docs greps every markdown file under DocsDir. A missing directory
// yields no results.
func (s *Searcher) Docs(ctx context.Context, query string) ([]Result, error) {
	return s.grepFiles(ctx, KindDoc, s.DocsDir, DefaultDocPattern, "", query)
}

// Code greps every file under SrcDir matching CodePattern. A missing
// directory yields no results.
func (s *Searcher) Code(ctx context.Context, query string) ([]Result, error) {
	pattern := s.CodePattern
	if pattern == "" {
		pattern = DefaultCodePattern
	}
	return s.grepFiles(ctx, KindCode, s.SrcDir, pattern, s.srcLabel(), query)
}

// All runs the glossary, document and code searches concurrently and
// merges their results in that order. The first error aborts the call.
func (s *Searcher) All(ctx context.Context, query string) ([]Result, error) {
	var terms, docs, code []Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		terms, err = s.Terms(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		docs, err = s.Docs(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		code, err = s.Code(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(terms)+len(docs)+len(code))
	out = append(out, terms...)
	out = append(out, docs...)
	out = append(out, code...)
	return out, nil
}

func (s *Searcher) srcLabel() string {
	if s.SrcLabel == "" {
		return "src"
	}
	return s.SrcLabel
}

func (s *Searcher) grepFiles(ctx context.Context, kind Kind, dir, pattern, label, query string) ([]Result, error) {
	files, err := ListFiles(dir, pattern)
	if err != nil {
		return nil, err
	}
	s.Log.Debug().Str("dir", dir).Str("pattern", pattern).Int("files", len(files)).Msg("files discovered")

	out := []Result{}
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, full, err := readFile(dir, rel)
		if err != nil {
			return nil, err
		}
		matches := Grep(content, query)
		if len(matches) == 0 {
			continue
		}
		title := rel
		if label != "" {
			title = path.Join(label, rel)
		}
		out = append(out, Result{
			Kind:     kind,
			Title:    title,
			Content:  FormatMatches(matches),
			Location: full,
		})
	}
	return out, nil
}
