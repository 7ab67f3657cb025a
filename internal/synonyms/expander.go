package synonyms

import "strings"

// termSet accumulates terms, preserving first-insertion order.
type termSet struct {
	items []string
	seen  map[string]struct{}
}

func newTermSet() *termSet {
	return &termSet{seen: make(map[string]struct{})}
}

func (s *termSet) add(term string) {
	if _, ok := s.seen[term]; ok {
		return
	}
	s.seen[term] = struct{}{}
	s.items = append(s.items, term)
}

func (s *termSet) addAll(terms []string) {
	for _, t := range terms {
		s.add(t)
	}
}

// Tokenize lower-cases the input, splits on whitespace, and drops tokens of
// length one or less.
func Tokenize(s string) []string {
	var tokens []string
	for _, f := range strings.Fields(strings.ToLower(s)) {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Expand widens a raw search string into the deduplicated set of related
// terms. The result starts with the raw tokens; each token then contributes
// its synonym group via direct lookup, via reverse lookup (a token appearing
// in another entry's value list pulls in the key and all siblings), and via
// the category-concept table. Order is first-insertion and deterministic.
// Blank input yields an empty set.
func Expand(searchTerm string) []string {
	tokens := Tokenize(searchTerm)
	if len(tokens) == 0 {
		return nil
	}

	set := newTermSet()
	for _, tok := range tokens {
		set.add(tok)
	}

	for _, tok := range tokens {
		if vals, ok := synonymTable[tok]; ok {
			set.addAll(vals)
		}
		for _, key := range synonymKeys {
			vals := synonymTable[key]
			if contains(vals, tok) {
				set.add(key)
				set.addAll(vals)
			}
		}
		for _, key := range conceptKeys {
			words := categoryConcepts[key]
			if tok == key || contains(words, tok) {
				set.addAll(words)
			}
		}
	}

	return set.items
}

// ConceptsFor returns the concept words for a category name: the
// concatenation of every concept entry whose key is a substring of the
// lower-cased name. Order follows the sorted concept keys.
func ConceptsFor(categoryName string) []string {
	name := strings.ToLower(categoryName)
	if name == "" {
		return nil
	}
	var words []string
	for _, key := range conceptKeys {
		if strings.Contains(name, key) {
			words = append(words, categoryConcepts[key]...)
		}
	}
	return words
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
