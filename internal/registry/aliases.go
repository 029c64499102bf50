package registry

import (
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// AliasTable maps a company key to the lowercase name variants it may
// appear under in questions and document text.
type AliasTable map[string][]string

// DefaultCompanyAliases returns the compiled-in alias table for the
// companies tracked in the document corpus.
func DefaultCompanyAliases() AliasTable {
	return AliasTable{
		"total":    {"total", "totalenergies", "total energies"},
		"sonangol": {"sonangol", "sonangol ep"},
		"azule":    {"azule", "azule energy", "azule-energy"},
		"chevron":  {"chevron", "chevron angola"},
		"bp":       {"bp", "bp angola"},
		"anpg":     {"anpg", "agência nacional", "agencia nacional"},
	}
}

// LoadAliasesFromFile reads a YAML alias table, replacing the defaults
// entirely when the file parses to a non-empty table.
func LoadAliasesFromFile(path string) (AliasTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: read aliases file")
	}

	var loaded AliasTable
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, eris.Wrap(err, "registry: unmarshal aliases file")
	}
	if len(loaded) == 0 {
		return DefaultCompanyAliases(), nil
	}
	return loaded, nil
}

// Keys returns the company keys in a stable order.
func (a AliasTable) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Identify returns the company keys whose aliases appear in the given
// text (matched case-insensitively on word boundaries), in stable key
// order.
func (a AliasTable) Identify(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, key := range a.Keys() {
		for _, alias := range a[key] {
			if containsWord(lower, alias) {
				found = append(found, key)
				break
			}
		}
	}
	return found
}

// Matches reports whether any alias of the given company key appears in
// the text on a word boundary.
func (a AliasTable) Matches(key, text string) bool {
	lower := strings.ToLower(text)
	for _, alias := range a[key] {
		if containsWord(lower, alias) {
			return true
		}
	}
	return false
}

// containsWord reports whether phrase occurs in text delimited by
// non-alphanumeric runes. Plain substring matching would let short
// aliases like "bp" fire inside unrelated tokens such as "bpd".
func containsWord(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for offset := 0; offset+len(phrase) <= len(text); {
		idx := strings.Index(text[offset:], phrase)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(phrase)

		before, _ := utf8.DecodeLastRuneInString(text[:start])
		after, _ := utf8.DecodeRuneInString(text[end:])
		boundedLeft := start == 0 || !isWordRune(before)
		boundedRight := end == len(text) || !isWordRune(after)
		if boundedLeft && boundedRight {
			return true
		}
		offset = start + 1
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
