package search

import "fmt"

// Kind tells which data source produced a Result.
type Kind string

const (
	KindTerm Kind = "term"
	KindDoc  Kind = "doc"
	KindCode Kind = "code"
)

// Result is one displayable hit. Location and Score are optional.
type Result struct {
	Kind     Kind
	Title    string
	Content  string
	Location string
	Score    *float64
}

// LineMatch is a single grep hit. Line is 1-based.
type LineMatch struct {
	Line int
	Text string
}

// Route is an HTTP route registration found in source text.
type Route struct {
	Method string
	Path   string
}

func (r Route) String() string {
	return fmt.Sprintf("%s %s", r.Method, r.Path)
}

// Model is a named schema block and its field lines.
type Model struct {
	Name   string
	Fields []string
}

// DocEntry is one markdown file of the documents set.
type DocEntry struct {
	Path  string
	Title string
}
