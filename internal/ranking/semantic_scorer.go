package ranking

import (
	"strings"

	"github.com/quickcart/storesearch/internal/models"
)

// SemanticScorer scores expanded terms against a product's name, description,
// category name, tags, and precomputed semantic keywords.
type SemanticScorer struct {
	weights *Weights
}

// NewSemanticScorer creates a SemanticScorer with the given weights.
func NewSemanticScorer(weights *Weights) *SemanticScorer {
	if weights == nil {
		weights = DefaultWeights()
	}
	weights.ApplyDefaults()
	return &SemanticScorer{weights: weights}
}

// Name returns the scorer name.
func (s *SemanticScorer) Name() string {
	return "semantic"
}

// Score accumulates points per expanded term and clamps the sum to
// SemanticCap. Exact name equality and partial name containment are mutually
// exclusive per term. Tag and semantic-keyword matches are bidirectional:
// the entry may contain the term or the term may contain the entry.
//
// The returned value is the raw [0, SemanticCap] score; the engine applies
// SemanticScale when folding it into the combined relevance score.
func (s *SemanticScorer) Score(terms []string, product *models.Product) float64 {
	if product == nil || len(terms) == 0 {
		return 0
	}

	name := strings.ToLower(product.Name)
	description := strings.ToLower(product.Description)
	category := strings.ToLower(product.CategoryName())

	var score float64
	for _, term := range terms {
		if name == term {
			score += s.weights.ExactName
		} else if strings.Contains(name, term) {
			score += s.weights.PartialName
		}
		if description != "" && strings.Contains(description, term) {
			score += s.weights.Description
		}
		if category != "" && strings.Contains(category, term) {
			score += s.weights.CategoryName
		}
		if anyEntryMatches(product.Tags, term) {
			score += s.weights.TagMatch
		}
		if anyEntryMatches(product.SemanticKeywords, term) {
			score += s.weights.SemanticKeyword
		}
	}

	if score > s.weights.SemanticCap {
		score = s.weights.SemanticCap
	}
	return score
}

// anyEntryMatches reports whether any entry contains the term or the term
// contains the entry, case-insensitively.
func anyEntryMatches(entries []string, term string) bool {
	for _, entry := range entries {
		entry = strings.ToLower(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, term) || strings.Contains(term, entry) {
			return true
		}
	}
	return false
}
