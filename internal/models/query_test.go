package models

import "testing"

func TestProductQuery_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		query      ProductQuery
		wantPage   int
		wantLimit  int
		wantSortBy string
		wantOrder  string
	}{
		{"defaults for plain listing", ProductQuery{}, 1, DefaultLimit, SortCreatedAt, OrderDesc},
		{"defaults for search", ProductQuery{Search: "phone"}, 1, DefaultLimit, SortRelevance, OrderDesc},
		{"caps limit", ProductQuery{Limit: 500}, 1, MaxLimit, SortCreatedAt, OrderDesc},
		{"negative page", ProductQuery{Page: -3}, 1, DefaultLimit, SortCreatedAt, OrderDesc},
		{"keeps explicit sort", ProductQuery{Search: "tv", SortBy: SortPrice, Order: "asc"}, 1, DefaultLimit, SortPrice, OrderAsc},
		{"unknown sort falls back", ProductQuery{SortBy: "popularity"}, 1, DefaultLimit, SortCreatedAt, OrderDesc},
		{"unknown order falls back", ProductQuery{Order: "sideways"}, 1, DefaultLimit, SortCreatedAt, OrderDesc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.query
			q.Normalize()
			if q.Page != tt.wantPage || q.Limit != tt.wantLimit || q.SortBy != tt.wantSortBy || q.Order != tt.wantOrder {
				t.Errorf("Normalize() = page %d limit %d sortBy %s order %s, want %d %d %s %s",
					q.Page, q.Limit, q.SortBy, q.Order,
					tt.wantPage, tt.wantLimit, tt.wantSortBy, tt.wantOrder)
			}
		})
	}
}

func TestProductQuery_HasSearch(t *testing.T) {
	if (&ProductQuery{Search: "   "}).HasSearch() {
		t.Error("whitespace-only search should not count")
	}
	if !(&ProductQuery{Search: "tv"}).HasSearch() {
		t.Error("expected HasSearch true")
	}
}

func TestProductQuery_Offset(t *testing.T) {
	q := &ProductQuery{Page: 3, Limit: 12}
	if got := q.Offset(); got != 24 {
		t.Errorf("Offset() = %d, want 24", got)
	}
}
