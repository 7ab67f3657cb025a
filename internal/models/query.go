package models

import "strings"

// Sort fields accepted by product listing and search.
const (
	SortRelevance = "relevance"
	SortPrice     = "price"
	SortName      = "name"
	SortCreatedAt = "createdAt"
)

// Sort directions.
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Pagination defaults.
const (
	DefaultLimit = 12
	MaxLimit     = 100
)

// ProductQuery represents a product listing or search request.
// MinPrice/MaxPrice of zero mean "no bound".
type ProductQuery struct {
	Search          string  `json:"search,omitempty"`
	CategoryID      string  `json:"categoryId,omitempty"`
	MinPrice        float64 `json:"minPrice,omitempty"`
	MaxPrice        float64 `json:"maxPrice,omitempty"`
	SortBy          string  `json:"sortBy,omitempty"`
	Order           string  `json:"order,omitempty"`
	Page            int     `json:"page,omitempty"`
	Limit           int     `json:"limit,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// HasSearch reports whether a non-blank search term was supplied.
func (q *ProductQuery) HasSearch() bool {
	return strings.TrimSpace(q.Search) != ""
}

// Normalize fills defaults and clamps invalid fields in place. Search
// requests default to relevance ordering, plain listings to creation date.
func (q *ProductQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	switch strings.ToUpper(q.Order) {
	case OrderAsc:
		q.Order = OrderAsc
	default:
		q.Order = OrderDesc
	}
	switch q.SortBy {
	case SortRelevance, SortPrice, SortName, SortCreatedAt:
	default:
		if q.HasSearch() {
			q.SortBy = SortRelevance
		} else {
			q.SortBy = SortCreatedAt
		}
	}
}

// Offset returns the zero-based offset of the first row of the requested page.
func (q *ProductQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
