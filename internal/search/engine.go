// Package search implements the hybrid product search engine.
//
// A request with no usable search term runs entirely in the database:
// filtered, sorted, and paginated SQL with a true row count. A request with
// a search term is expanded into related terms, a bounded candidate set is
// fetched with a broad OR filter, and candidates are scored, sorted, and
// paginated in memory. The engine is stateless and read-only; every
// invocation re-expands and re-scores from scratch.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/quickcart/storesearch/internal/config"
	"github.com/quickcart/storesearch/internal/models"
	"github.com/quickcart/storesearch/internal/ranking"
	"github.com/quickcart/storesearch/internal/storage"
	"github.com/quickcart/storesearch/internal/synonyms"
)

// Engine orchestrates term expansion, candidate fetch, and scoring.
type Engine struct {
	store    storage.Store
	keyword  *ranking.KeywordScorer
	semantic *ranking.SemanticScorer
	weights  *ranking.Weights
	config   *config.SearchConfig
}

// NewEngine creates a search engine over the given store. Nil weights or
// config fall back to defaults.
func NewEngine(store storage.Store, weights *ranking.Weights, cfg *config.SearchConfig) *Engine {
	if weights == nil {
		weights = ranking.DefaultWeights()
	}
	weights.ApplyDefaults()
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults.Search
	}
	return &Engine{
		store:    store,
		keyword:  ranking.NewKeywordScorer(weights),
		semantic: ranking.NewSemanticScorer(weights),
		weights:  weights,
		config:   cfg,
	}
}

// ResolveCategory returns categoryID plus the ids of its direct children,
// so filtering by a parent category includes products assigned to its
// subcategories. An unknown id resolves to itself alone; it never errors
// for a well-formed id and never hides all products.
func (e *Engine) ResolveCategory(ctx context.Context, categoryID string) ([]string, error) {
	childIDs, err := e.store.ChildCategoryIDs(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return append([]string{categoryID}, childIDs...), nil
}

// Search runs a product listing or hybrid search. A blank search term, or
// one whose tokens all collapse during expansion, takes the standard branch.
// Database errors propagate unwrapped in meaning: the engine does not log,
// retry, or degrade.
func (e *Engine) Search(ctx context.Context, query *models.ProductQuery) (*models.ProductResponse, error) {
	query.Normalize()

	filter := storage.ListFilter{
		MinPrice:        query.MinPrice,
		MaxPrice:        query.MaxPrice,
		IncludeInactive: query.IncludeInactive,
	}
	if query.CategoryID != "" {
		categoryIDs, err := e.ResolveCategory(ctx, query.CategoryID)
		if err != nil {
			return nil, err
		}
		filter.CategoryIDs = categoryIDs
	}

	if !query.HasSearch() {
		return e.standardSearch(ctx, query, filter)
	}

	terms := synonyms.Expand(query.Search)
	if len(terms) == 0 {
		return e.standardSearch(ctx, query, filter)
	}
	return e.hybridSearch(ctx, query, filter, terms)
}

// standardSearch runs the database-side filtered, sorted, paginated fetch.
// pagination.total is the true count of matching rows. A relevance sort has
// no scores to order by on this branch and degrades to created_at ordering.
func (e *Engine) standardSearch(ctx context.Context, query *models.ProductQuery, filter storage.ListFilter) (*models.ProductResponse, error) {
	filter.SortBy = query.SortBy
	filter.Order = query.Order
	filter.Offset = query.Offset()
	filter.Limit = query.Limit

	products, total, err := e.store.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]*models.ScoredProduct, 0, len(products))
	for _, product := range products {
		results = append(results, &models.ScoredProduct{Product: product})
	}

	return &models.ProductResponse{
		Products:   results,
		Pagination: paginationFor(query, total),
		SearchInfo: models.SearchInfo{Type: models.SearchTypeStandard},
	}, nil
}

// hybridSearch fetches a bounded candidate set, scores it in memory, sorts,
// and slices the requested page. pagination.total is the number of scored
// candidates, capped at MaxScoringCandidates, not the true match count.
func (e *Engine) hybridSearch(ctx context.Context, query *models.ProductQuery, filter storage.ListFilter, terms []string) (*models.ProductResponse, error) {
	candidates, err := e.store.SearchCandidates(ctx, terms, filter, e.config.MaxScoringCandidates)
	if err != nil {
		return nil, err
	}

	scored := make([]*models.ScoredProduct, 0, len(candidates))
	for _, product := range candidates {
		keywordScore := e.keyword.Score(terms, product)
		semanticScore := e.semantic.Score(terms, product) * e.weights.SemanticScale
		scored = append(scored, &models.ScoredProduct{
			Product:        product,
			KeywordScore:   keywordScore,
			SemanticScore:  semanticScore,
			RelevanceScore: keywordScore + semanticScore,
		})
	}

	sortScored(scored, query.SortBy, query.Order)

	total := len(scored)
	start := query.Offset()
	if start > total {
		start = total
	}
	end := start + query.Limit
	if end > total {
		end = total
	}

	return &models.ProductResponse{
		Products:   scored[start:end],
		Pagination: paginationFor(query, total),
		SearchInfo: models.SearchInfo{
			Type:          models.SearchTypeHybrid,
			OriginalQuery: query.Search,
			ExpandedTerms: previewTerms(terms, e.config.ExpandedTermsPreview),
			TermCount:     len(terms),
		},
	}, nil
}

// sortScored orders the scored candidates in place. Relevance is always
// descending; other fields honor the requested direction. The sort is stable
// so equal keys keep their fetch order.
func sortScored(scored []*models.ScoredProduct, sortBy, order string) {
	var less func(a, b *models.ScoredProduct) bool

	switch sortBy {
	case models.SortPrice:
		less = func(a, b *models.ScoredProduct) bool { return a.Price < b.Price }
	case models.SortName:
		less = func(a, b *models.ScoredProduct) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case models.SortCreatedAt:
		less = func(a, b *models.ScoredProduct) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].RelevanceScore > scored[j].RelevanceScore
		})
		return
	}

	if order == models.OrderDesc {
		inner := less
		less = func(a, b *models.ScoredProduct) bool { return inner(b, a) }
	}
	sort.SliceStable(scored, func(i, j int) bool { return less(scored[i], scored[j]) })
}

func paginationFor(query *models.ProductQuery, total int) models.Pagination {
	pages := 0
	if total > 0 {
		pages = (total + query.Limit - 1) / query.Limit
	}
	return models.Pagination{
		Page:  query.Page,
		Limit: query.Limit,
		Total: total,
		Pages: pages,
	}
}

func previewTerms(terms []string, n int) []string {
	if len(terms) <= n {
		return terms
	}
	return terms[:n]
}
