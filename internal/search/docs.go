package search

// ListDocs returns the markdown files under DocsDir with their titles.
// A missing directory yields an empty list.
func (s *Searcher) ListDocs() ([]DocEntry, error) {
	files, err := ListFiles(s.DocsDir, DefaultDocPattern)
	if err != nil {
		return nil, err
	}
	out := make([]DocEntry, 0, len(files))
	for _, rel := range files {
		content, _, err := readFile(s.DocsDir, rel)
		if err != nil {
			return nil, err
		}
		out = append(out, DocEntry{Path: rel, Title: docTitle(content)})
	}
	return out, nil
}
