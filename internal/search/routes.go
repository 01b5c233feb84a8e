package search

import (
	"context"
	"path"
	"regexp"
	"strings"
)

// routePatterns recognise exactly two call-site shapes,
// router.<verb>('<path>' and app.<verb>('<path>', with any of the three JS
// quote characters. Chained .route() calls, upper-case verbs and paths held
// in variables are not matched.
var routePatterns = []*regexp.Regexp{
	regexp.MustCompile("router\\.(get|post|put|delete|patch)\\s*\\(\\s*['\"`]([^'\"`]+)['\"`]"),
	regexp.MustCompile("app\\.(get|post|put|delete|patch)\\s*\\(\\s*['\"`]([^'\"`]+)['\"`]"),
}

// ExtractRoutes returns the route registrations found in content. All
// router.* matches come before all app.* matches.
func ExtractRoutes(content string) []Route {
	var out []Route
	for _, re := range routePatterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			out = append(out, Route{Method: strings.ToUpper(m[1]), Path: m[2]})
		}
	}
	return out
}

// Routes scans files under SrcDir matching RoutePattern and returns one
// result per file that registers at least one route.
func (s *Searcher) Routes(ctx context.Context) ([]Result, error) {
	pattern := s.RoutePattern
	if pattern == "" {
		pattern = DefaultRoutePattern
	}
	files, err := ListFiles(s.SrcDir, pattern)
	if err != nil {
		return nil, err
	}

	out := []Result{}
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, full, err := readFile(s.SrcDir, rel)
		if err != nil {
			return nil, err
		}
		routes := ExtractRoutes(content)
		if len(routes) == 0 {
			continue
		}
		lines := make([]string, len(routes))
		for i, r := range routes {
			lines[i] = r.String()
		}
		out = append(out, Result{
			Kind:     KindCode,
			Title:    path.Join(s.srcLabel(), rel),
			Content:  strings.Join(lines, "\n"),
			Location: full,
		})
	}
	s.Log.Debug().Str("dir", s.SrcDir).Int("files", len(files)).Int("with_routes", len(out)).Msg("routes scanned")
	return out, nil
}
