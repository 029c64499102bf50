package analysis

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks after NFD decomposition, so
// "produção" and "producao" compare equal.
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// fold lowercases s and removes diacritics. Keyword matching across the
// pipeline runs on folded text: the scraped documents mix accented and
// unaccented spellings of the same Portuguese words.
func fold(s string) string {
	out, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// containsFold reports whether substr occurs in s, ignoring case and
// diacritics.
func containsFold(s, substr string) bool {
	return strings.Contains(fold(s), fold(substr))
}

// containsAnyFold reports whether any of the keywords occurs in s,
// ignoring case and diacritics.
func containsAnyFold(s string, keywords []string) bool {
	folded := fold(s)
	for _, kw := range keywords {
		if strings.Contains(folded, fold(kw)) {
			return true
		}
	}
	return false
}
