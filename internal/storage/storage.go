// Package storage defines the persistence interface for the product catalog.
package storage

import (
	"context"
	"errors"

	"github.com/quickcart/storesearch/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ListFilter holds the SQL-side constraints shared by plain listing and
// hybrid candidate fetch. MinPrice/MaxPrice of zero mean "no bound".
// An empty CategoryIDs slice means no category filtering.
type ListFilter struct {
	CategoryIDs     []string
	MinPrice        float64
	MaxPrice        float64
	IncludeInactive bool

	// Used by ListProducts only; candidate fetch ignores them.
	SortBy string
	Order  string
	Offset int
	Limit  int
}

// Store defines catalog persistence used by the search engine and the API.
type Store interface {
	// Product operations
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error

	// ListProducts runs a database-side sorted, paginated fetch and returns
	// the rows plus the true count of all rows matching the filter.
	ListProducts(ctx context.Context, filter ListFilter) ([]*models.Product, int, error)

	// SearchCandidates returns up to limit rows whose name or description
	// contains any of the given terms, case-insensitively, subject to the
	// filter's active/category/price constraints. The limit bounds in-memory
	// scoring cost; it is not a pagination limit.
	SearchCandidates(ctx context.Context, terms []string, filter ListFilter, limit int) ([]*models.Product, error)

	// Category operations
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)

	// ChildCategoryIDs returns the ids of the direct children of the given
	// category. One level only; grandchildren are never resolved.
	ChildCategoryIDs(ctx context.Context, id string) ([]string, error)

	// Stats
	CountProducts(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)

	Close() error
}
