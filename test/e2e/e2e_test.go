package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/quickcart/storesearch/internal/config"
	"github.com/quickcart/storesearch/internal/models"
	"github.com/quickcart/storesearch/internal/search"
	"github.com/quickcart/storesearch/internal/server"
	"github.com/quickcart/storesearch/internal/storage"
)

type searchEnvelope struct {
	Success    bool                    `json:"success"`
	Products   []*models.ScoredProduct `json:"products"`
	Pagination models.Pagination       `json:"pagination"`
	SearchInfo models.SearchInfo       `json:"searchInfo"`
}

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })

	cfg := config.Default()
	engine := search.NewEngine(store, &cfg.Ranking, &cfg.Search)
	srv := server.NewServer(engine, store, cfg, zap.NewNop())

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, baseURL, path string, body interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST %s: status %d", path, resp.StatusCode)
	}
}

func seedCatalog(t *testing.T, baseURL string, catalog *Catalog) {
	t.Helper()
	for _, category := range catalog.Categories {
		postJSON(t, baseURL, "/api/v1/categories", category)
	}
	for _, product := range catalog.Products {
		postJSON(t, baseURL, "/api/v1/products", product)
	}
}

func runSearch(t *testing.T, baseURL string, params url.Values) *searchEnvelope {
	t.Helper()
	resp, err := http.Get(baseURL + "/api/v1/products?" + params.Encode())
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/v1/products: status %d", resp.StatusCode)
	}
	var envelope searchEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatal(err)
	}
	if !envelope.Success {
		t.Fatal("response success flag is false")
	}
	return &envelope
}

func TestE2E_SearchReturnsExpectedProducts(t *testing.T) {
	ts := startServer(t)
	catalog := BuildCatalog()
	seedCatalog(t, ts.URL, catalog)

	for _, tc := range catalog.TestCases {
		t.Run(tc.Description, func(t *testing.T) {
			params := url.Values{"search": {tc.Query}, "limit": {"50"}}
			if tc.CategoryID != "" {
				params.Set("categoryId", tc.CategoryID)
			}
			envelope := runSearch(t, ts.URL, params)

			if envelope.SearchInfo.Type != models.SearchTypeHybrid {
				t.Errorf("query %q: search type = %s", tc.Query, envelope.SearchInfo.Type)
			}
			got := make(map[string]bool)
			for _, p := range envelope.Products {
				got[p.ID] = true
			}
			for _, id := range tc.ExpectedProductIDs {
				if !got[id] {
					t.Errorf("query %q: expected product %s in results, got %v",
						tc.Query, id, productIDs(envelope.Products))
				}
			}
		})
	}
}

func TestE2E_BrowseAndPaginate(t *testing.T) {
	ts := startServer(t)
	catalog := BuildCatalog()
	seedCatalog(t, ts.URL, catalog)

	// No search term: a standard listing with the true total.
	envelope := runSearch(t, ts.URL, url.Values{"limit": {"4"}})
	if envelope.SearchInfo.Type != models.SearchTypeStandard {
		t.Errorf("type = %s", envelope.SearchInfo.Type)
	}
	if envelope.Pagination.Total != len(catalog.Products) {
		t.Errorf("total = %d, want %d", envelope.Pagination.Total, len(catalog.Products))
	}
	if len(envelope.Products) != 4 {
		t.Errorf("page size = %d", len(envelope.Products))
	}

	// Price sort ascending across the whole catalog.
	envelope = runSearch(t, ts.URL, url.Values{
		"sortBy": {"price"}, "order": {"asc"}, "limit": {"100"},
	})
	for i := 1; i < len(envelope.Products); i++ {
		if envelope.Products[i].Price < envelope.Products[i-1].Price {
			t.Fatalf("price order violated at %d: %v after %v",
				i, envelope.Products[i].Price, envelope.Products[i-1].Price)
		}
	}
}

func TestE2E_ScoringCapBoundsTotal(t *testing.T) {
	ts := startServer(t)
	catalog := BuildCatalog()
	seedCatalog(t, ts.URL, catalog)
	for _, product := range BuildBulkProducts(220) {
		postJSON(t, ts.URL, "/api/v1/products", product)
	}

	envelope := runSearch(t, ts.URL, url.Values{"search": {"phone case"}, "limit": {"100"}})
	if envelope.SearchInfo.Type != models.SearchTypeHybrid {
		t.Fatalf("type = %s", envelope.SearchInfo.Type)
	}
	if envelope.Pagination.Total != 200 {
		t.Errorf("hybrid total = %d, want the 200-candidate cap", envelope.Pagination.Total)
	}

	// The standard listing still reports the true catalog size.
	envelope = runSearch(t, ts.URL, url.Values{})
	if envelope.Pagination.Total != len(catalog.Products)+220 {
		t.Errorf("standard total = %d, want %d", envelope.Pagination.Total, len(catalog.Products)+220)
	}
}

func TestE2E_PriceFilterWithSearch(t *testing.T) {
	ts := startServer(t)
	seedCatalog(t, ts.URL, BuildCatalog())

	envelope := runSearch(t, ts.URL, url.Values{
		"search": {"laptop"}, "minPrice": {"1200"}, "limit": {"50"},
	})
	for _, p := range envelope.Products {
		if p.Price < 1200 {
			t.Errorf("product %s price %v below minPrice", p.ID, p.Price)
		}
	}
	got := productIDs(envelope.Products)
	if len(got) != 1 || got[0] != "thinkpad" {
		t.Errorf("expected only the expensive ultrabook, got %v", got)
	}
}

func productIDs(products []*models.ScoredProduct) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
