// Package glossary loads the curated term list and ranks terms against a
// query with weighted fuzzy matching.
package glossary

// Term is one glossary entry describing a single concept.
type Term struct {
	Term         string   `json:"term"`
	Reading      string   `json:"reading"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Example      string   `json:"example"`
	RelatedTerms []string `json:"relatedTerms"`
}

// Glossary is the whole data set as stored in glossary.json.
type Glossary struct {
	Terms []Term `json:"terms"`
}

// Match is one ranked search hit. Score is in [0,1]; 0 is a perfect match.
type Match struct {
	Term  Term
	Score float64
	// Refs lists the fields that contributed to the score, e.g. "term" or
	// "relatedTerms[1]".
	Refs []string
}
