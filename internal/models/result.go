package models

// Search result types reported in SearchInfo.Type.
const (
	SearchTypeStandard = "standard"
	SearchTypeHybrid   = "hybrid"
)

// ScoredProduct is a product plus the per-request relevance scores computed
// on the hybrid path. The score fields are transient: they are never
// persisted and are absent on the standard path.
type ScoredProduct struct {
	*Product
	RelevanceScore float64 `json:"_relevanceScore,omitempty"`
	KeywordScore   float64 `json:"_keywordScore,omitempty"`
	SemanticScore  float64 `json:"_semanticScore,omitempty"`
}

// Pagination describes the page window of a product response. On the hybrid
// path Total counts scored candidates (bounded by the candidate cap), not
// all matching rows; on the standard path it is the true filtered row count.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// SearchInfo describes how a product response was produced.
type SearchInfo struct {
	Type          string   `json:"type"`
	OriginalQuery string   `json:"originalQuery,omitempty"`
	ExpandedTerms []string `json:"expandedTerms,omitempty"`
	TermCount     int      `json:"termCount,omitempty"`
}

// ProductResponse is the envelope returned by product listing and search.
type ProductResponse struct {
	Products   []*ScoredProduct `json:"products"`
	Pagination Pagination       `json:"pagination"`
	SearchInfo SearchInfo       `json:"searchInfo"`
}
