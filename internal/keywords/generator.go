// Package keywords precomputes the denormalized semantic keyword list stored
// on each product row. The list is regenerated on every product create and
// update and read back by the semantic scorer at search time.
package keywords

import (
	"strings"

	"github.com/quickcart/storesearch/internal/models"
	"github.com/quickcart/storesearch/internal/synonyms"
)

// MaxKeywords bounds the persisted keyword list per product.
const MaxKeywords = 50

// Generate builds up to MaxKeywords keywords for a product, in insertion
// order:
//
//   - every name token longer than 2 characters, plus its synonym group when
//     the token is a canonical term;
//   - for description tokens longer than 3 characters, only tokens that are
//     themselves canonical terms contribute (the token and its group); all
//     other description words are dropped;
//   - concept words for the product's category name;
//   - the product's existing tags, lower-cased.
//
// The name and description passes are deliberately asymmetric: plain
// description words never become keywords.
func Generate(product *models.Product) []string {
	if product == nil {
		return nil
	}

	set := newKeywordSet()

	for _, tok := range tokenize(product.Name, 2) {
		set.add(tok)
		if group, ok := synonyms.Lookup(tok); ok {
			set.addAll(group)
		}
	}

	for _, tok := range tokenize(product.Description, 3) {
		if group, ok := synonyms.Lookup(tok); ok {
			set.add(tok)
			set.addAll(group)
		}
	}

	set.addAll(synonyms.ConceptsFor(product.CategoryName()))

	for _, tag := range product.Tags {
		set.add(strings.ToLower(tag))
	}

	if len(set.items) > MaxKeywords {
		return set.items[:MaxKeywords]
	}
	return set.items
}

// tokenize lower-cases and splits on whitespace, keeping tokens strictly
// longer than minLen.
func tokenize(s string, minLen int) []string {
	var tokens []string
	for _, f := range strings.Fields(strings.ToLower(s)) {
		if len(f) > minLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

type keywordSet struct {
	items []string
	seen  map[string]struct{}
}

func newKeywordSet() *keywordSet {
	return &keywordSet{seen: make(map[string]struct{})}
}

func (s *keywordSet) add(kw string) {
	if kw == "" {
		return
	}
	if _, ok := s.seen[kw]; ok {
		return
	}
	s.seen[kw] = struct{}{}
	s.items = append(s.items, kw)
}

func (s *keywordSet) addAll(kws []string) {
	for _, kw := range kws {
		s.add(kw)
	}
}
