package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/quickcart/storesearch/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func mustCreateCategory(t *testing.T, store *SQLiteStore, id, name, parentID string) {
	t.Helper()
	err := store.CreateCategory(context.Background(), &models.Category{
		ID: id, Name: name, Slug: id + "-" + name, ParentID: parentID, IsActive: true,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestSQLiteStore_ProductCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	mustCreateCategory(t, store, "c1", "Electronics", "")

	product := &models.Product{
		ID:               "p1",
		Name:             "Wireless Headphones",
		Description:      "Noise cancelling",
		Price:            199.99,
		CategoryID:       "c1",
		Tags:             []string{"audio", "wireless"},
		SemanticKeywords: []string{"headphones", "earbuds"},
		IsActive:         true,
	}
	if err := store.CreateProduct(ctx, product); err != nil {
		t.Fatal(err)
	}
	if product.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	got, err := store.GetProduct(ctx, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Wireless Headphones" || got.Price != 199.99 {
		t.Errorf("got %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "audio" {
		t.Errorf("tags not round-tripped: %v", got.Tags)
	}
	if len(got.SemanticKeywords) != 2 {
		t.Errorf("keywords not round-tripped: %v", got.SemanticKeywords)
	}
	if got.Category == nil || got.Category.Name != "Electronics" {
		t.Errorf("category not joined: %+v", got.Category)
	}

	got.Price = 149.99
	if err := store.UpdateProduct(ctx, got); err != nil {
		t.Fatal(err)
	}
	got, _ = store.GetProduct(ctx, "p1")
	if got.Price != 149.99 {
		t.Errorf("expected updated price, got %v", got.Price)
	}

	if err := store.DeleteProduct(ctx, "p1"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetProduct(ctx, "p1"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteProduct(ctx, "p1"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
	if err := store.UpdateProduct(ctx, got); err != ErrNotFound {
		t.Errorf("expected ErrNotFound on update of deleted row, got %v", err)
	}
}

func TestSQLiteStore_ChildCategoryIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	mustCreateCategory(t, store, "1", "Electronics", "")
	mustCreateCategory(t, store, "101", "Smartphones", "1")
	mustCreateCategory(t, store, "102", "Laptops", "1")
	mustCreateCategory(t, store, "2", "Sports", "")

	ids, err := store.ChildCategoryIDs(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "101" || ids[1] != "102" {
		t.Errorf("ChildCategoryIDs(1) = %v", ids)
	}

	// Leaf and unknown categories have no children; neither is an error.
	ids, err = store.ChildCategoryIDs(ctx, "101")
	if err != nil || len(ids) != 0 {
		t.Errorf("leaf children = %v, err %v", ids, err)
	}
	ids, err = store.ChildCategoryIDs(ctx, "does-not-exist")
	if err != nil || len(ids) != 0 {
		t.Errorf("unknown children = %v, err %v", ids, err)
	}
}

func TestSQLiteStore_ListProducts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	mustCreateCategory(t, store, "c1", "Electronics", "")
	mustCreateCategory(t, store, "c2", "Sports", "")

	seed := []struct {
		id       string
		name     string
		price    float64
		category string
		active   bool
	}{
		{"p1", "Phone", 699, "c1", true},
		{"p2", "Laptop", 1299, "c1", true},
		{"p3", "Yoga Mat", 25, "c2", true},
		{"p4", "Old Phone", 99, "c1", false},
	}
	for _, s := range seed {
		err := store.CreateProduct(ctx, &models.Product{
			ID: s.id, Name: s.name, Price: s.price, CategoryID: s.category, IsActive: s.active,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	t.Run("active only by default", func(t *testing.T) {
		products, total, err := store.ListProducts(ctx, ListFilter{Limit: 10})
		if err != nil {
			t.Fatal(err)
		}
		if total != 3 || len(products) != 3 {
			t.Errorf("total %d, rows %d", total, len(products))
		}
	})

	t.Run("include inactive", func(t *testing.T) {
		_, total, err := store.ListProducts(ctx, ListFilter{IncludeInactive: true, Limit: 10})
		if err != nil {
			t.Fatal(err)
		}
		if total != 4 {
			t.Errorf("total %d", total)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		products, total, err := store.ListProducts(ctx, ListFilter{CategoryIDs: []string{"c2"}, Limit: 10})
		if err != nil {
			t.Fatal(err)
		}
		if total != 1 || products[0].Name != "Yoga Mat" {
			t.Errorf("total %d, products %v", total, products)
		}
	})

	t.Run("price range", func(t *testing.T) {
		_, total, err := store.ListProducts(ctx, ListFilter{MinPrice: 100, MaxPrice: 1000, Limit: 10})
		if err != nil {
			t.Fatal(err)
		}
		if total != 1 {
			t.Errorf("total %d", total)
		}
	})

	t.Run("price sort ascending", func(t *testing.T) {
		products, _, err := store.ListProducts(ctx, ListFilter{SortBy: models.SortPrice, Order: models.OrderAsc, Limit: 10})
		if err != nil {
			t.Fatal(err)
		}
		if products[0].Name != "Yoga Mat" || products[len(products)-1].Name != "Laptop" {
			t.Errorf("unexpected order: %v", names(products))
		}
	})

	t.Run("pagination window and true total", func(t *testing.T) {
		products, total, err := store.ListProducts(ctx, ListFilter{Limit: 2, Offset: 2})
		if err != nil {
			t.Fatal(err)
		}
		if total != 3 || len(products) != 1 {
			t.Errorf("total %d, rows %d", total, len(products))
		}
	})
}

func TestSQLiteStore_SearchCandidates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	mustCreateCategory(t, store, "c1", "Electronics", "")

	seed := []*models.Product{
		{ID: "p1", Name: "iPhone 15 Pro", Description: "Apple smartphone", CategoryID: "c1", IsActive: true},
		{ID: "p2", Name: "Desk Lamp", Description: "Warm light", CategoryID: "c1", IsActive: true},
		{ID: "p3", Name: "Charging Dock", Description: "Fits any mobile phone", CategoryID: "c1", IsActive: true},
		{ID: "p4", Name: "Burner Phone", Description: "", CategoryID: "c1", IsActive: false},
	}
	for _, p := range seed {
		if err := store.CreateProduct(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("matches name or description, case-insensitive", func(t *testing.T) {
		products, err := store.SearchCandidates(ctx, []string{"phone"}, ListFilter{}, 200)
		if err != nil {
			t.Fatal(err)
		}
		got := names(products)
		if len(got) != 2 {
			t.Fatalf("candidates = %v", got)
		}
	})

	t.Run("any term matches", func(t *testing.T) {
		products, err := store.SearchCandidates(ctx, []string{"lamp", "phone"}, ListFilter{}, 200)
		if err != nil {
			t.Fatal(err)
		}
		if len(products) != 3 {
			t.Errorf("candidates = %v", names(products))
		}
	})

	t.Run("empty terms yield nothing", func(t *testing.T) {
		products, err := store.SearchCandidates(ctx, nil, ListFilter{}, 200)
		if err != nil || products != nil {
			t.Errorf("got %v, err %v", products, err)
		}
	})

	t.Run("respects cap", func(t *testing.T) {
		for i := 0; i < 30; i++ {
			err := store.CreateProduct(ctx, &models.Product{
				ID: fmt.Sprintf("bulk%d", i), Name: fmt.Sprintf("Phone Model %d", i), IsActive: true,
			})
			if err != nil {
				t.Fatal(err)
			}
		}
		products, err := store.SearchCandidates(ctx, []string{"phone"}, ListFilter{}, 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(products) != 10 {
			t.Errorf("expected capped fetch of 10, got %d", len(products))
		}
	})
}

func names(products []*models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}
