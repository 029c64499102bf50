// Package docstore provides the indexed content store the retrieval stage
// queries with free-text questions. Two backends exist: SQLite FTS5 (the
// default, single-file) and Postgres full-text search.
package docstore

import (
	"context"
	"strings"
	"unicode"
)

// Document is one indexed source document with optional matched snippets
// populated by Search.
type Document struct {
	ID       string   `json:"id"`
	Company  string   `json:"company,omitempty"`
	URL      string   `json:"url,omitempty"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Snippets []string `json:"matched_snippets,omitempty"`
	Score    float64  `json:"score,omitempty"`
}

// Store is the searchable content store contract. Search must return an
// empty slice, not an error, when nothing matches.
type Store interface {
	Index(ctx context.Context, doc Document) error
	Search(ctx context.Context, query string, maxResults int) ([]Document, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// portugueseStopwords are dropped from free-text questions before they are
// turned into an index query.
var portugueseStopwords = map[string]bool{
	"a": true, "o": true, "as": true, "os": true, "um": true, "uma": true,
	"de": true, "da": true, "do": true, "das": true, "dos": true,
	"em": true, "na": true, "no": true, "nas": true, "nos": true,
	"e": true, "ou": true, "que": true, "qual": true, "quais": true,
	"quem": true, "como": true, "para": true, "com": true, "por": true,
	"é": true, "são": true, "foi": true, "ser": true, "tem": true,
	"the": true, "of": true, "and": true, "in": true, "is": true,
}

// queryTerms tokenizes a free-text question into search terms: lowercase,
// stripped of punctuation, stopwords removed, terms shorter than 3 runes
// dropped.
func queryTerms(question string) []string {
	fields := strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	var terms []string
	seen := make(map[string]bool)
	for _, f := range fields {
		if len([]rune(f)) < 3 || portugueseStopwords[f] || seen[f] {
			continue
		}
		seen[f] = true
		terms = append(terms, f)
	}
	return terms
}
