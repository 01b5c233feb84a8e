package search

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ListFiles returns the files under dir matching pattern, as sorted
// slash-separated paths relative to dir. A missing dir yields no files.
func ListFiles(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("cannot stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("cannot scan %s for %s: %w", dir, pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// readFile reads dir/rel, where rel is a slash-separated relative path.
func readFile(dir, rel string) (string, string, error) {
	full := filepath.Join(dir, filepath.FromSlash(rel))
	b, err := os.ReadFile(full)
	if err != nil {
		return "", full, fmt.Errorf("cannot read %s: %w", full, err)
	}
	return string(b), full, nil
}
