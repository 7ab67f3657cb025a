package ranking

import (
	"strings"

	"github.com/quickcart/storesearch/internal/models"
)

// KeywordScorer scores direct substring matches of expanded terms against a
// product's name and description.
type KeywordScorer struct {
	weights *Weights
}

// NewKeywordScorer creates a KeywordScorer with the given weights.
func NewKeywordScorer(weights *Weights) *KeywordScorer {
	if weights == nil {
		weights = DefaultWeights()
	}
	weights.ApplyDefaults()
	return &KeywordScorer{weights: weights}
}

// Name returns the scorer name.
func (s *KeywordScorer) Name() string {
	return "keyword"
}

// Score returns a value in [0, KeywordCap]. Any term contained in the
// lower-cased name contributes NameMatch once; any term contained in the
// description contributes DescriptionMatch once. The sum is capped, so a
// product matching on both fields still scores KeywordCap, not their sum.
func (s *KeywordScorer) Score(terms []string, product *models.Product) float64 {
	if product == nil || len(terms) == 0 {
		return 0
	}

	name := strings.ToLower(product.Name)
	description := strings.ToLower(product.Description)

	var score float64
	if anyTermIn(name, terms) {
		score += s.weights.NameMatch
	}
	if description != "" && anyTermIn(description, terms) {
		score += s.weights.DescriptionMatch
	}
	if score > s.weights.KeywordCap {
		score = s.weights.KeywordCap
	}
	return score
}

func anyTermIn(field string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(field, term) {
			return true
		}
	}
	return false
}
