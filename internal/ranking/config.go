// Package ranking scores catalog products against an expanded term set.
package ranking

// Weights holds every scoring constant used by the keyword scorer, the
// semantic scorer, and the engine's rescaling, so the whole weighting policy
// is auditable in one place.
type Weights struct {
	// Keyword scoring values
	NameMatch        float64 `yaml:"name_match"`        // default: 50
	DescriptionMatch float64 `yaml:"description_match"` // default: 25
	KeywordCap       float64 `yaml:"keyword_cap"`       // default: 50

	// Semantic scoring values, accumulated per expanded term
	ExactName       float64 `yaml:"exact_name"`       // default: 30
	PartialName     float64 `yaml:"partial_name"`     // default: 15
	Description     float64 `yaml:"description"`      // default: 10
	CategoryName    float64 `yaml:"category_name"`    // default: 15
	TagMatch        float64 `yaml:"tag_match"`        // default: 20
	SemanticKeyword float64 `yaml:"semantic_keyword"` // default: 10
	SemanticCap     float64 `yaml:"semantic_cap"`     // default: 100

	// SemanticScale folds the semantic score into its 50% weight bucket.
	// It is applied by the engine after scoring, never inside the scorer.
	SemanticScale float64 `yaml:"semantic_scale"` // default: 0.5
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() *Weights {
	return &Weights{
		NameMatch:        50,
		DescriptionMatch: 25,
		KeywordCap:       50,

		ExactName:       30,
		PartialName:     15,
		Description:     10,
		CategoryName:    15,
		TagMatch:        20,
		SemanticKeyword: 10,
		SemanticCap:     100,

		SemanticScale: 0.5,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (w *Weights) ApplyDefaults() {
	defaults := DefaultWeights()

	if w.NameMatch == 0 {
		w.NameMatch = defaults.NameMatch
	}
	if w.DescriptionMatch == 0 {
		w.DescriptionMatch = defaults.DescriptionMatch
	}
	if w.KeywordCap == 0 {
		w.KeywordCap = defaults.KeywordCap
	}
	if w.ExactName == 0 {
		w.ExactName = defaults.ExactName
	}
	if w.PartialName == 0 {
		w.PartialName = defaults.PartialName
	}
	if w.Description == 0 {
		w.Description = defaults.Description
	}
	if w.CategoryName == 0 {
		w.CategoryName = defaults.CategoryName
	}
	if w.TagMatch == 0 {
		w.TagMatch = defaults.TagMatch
	}
	if w.SemanticKeyword == 0 {
		w.SemanticKeyword = defaults.SemanticKeyword
	}
	if w.SemanticCap == 0 {
		w.SemanticCap = defaults.SemanticCap
	}
	if w.SemanticScale == 0 {
		w.SemanticScale = defaults.SemanticScale
	}
}
