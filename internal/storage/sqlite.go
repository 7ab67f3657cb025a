// Package storage provides the SQLite implementation of the Store interface.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/quickcart/storesearch/internal/models"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and initializes
// the schema. Parent directories are created if they do not exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		parent_id TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		FOREIGN KEY (parent_id) REFERENCES categories(id)
	);

	CREATE INDEX IF NOT EXISTS idx_categories_parent_id ON categories(parent_id);

	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price REAL NOT NULL DEFAULT 0,
		category_id TEXT,
		tags TEXT,
		semantic_keywords TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (category_id) REFERENCES categories(id)
	);

	CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id);
	CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);
	CREATE INDEX IF NOT EXISTS idx_products_is_active ON products(is_active);
	`
	_, err := db.Exec(schema)
	return err
}

const productColumns = `p.id, p.name, p.description, p.price, p.category_id,
	p.tags, p.semantic_keywords, p.is_active, p.created_at, p.updated_at,
	c.id, c.name, c.slug, c.parent_id, c.is_active`

const productSelect = `SELECT ` + productColumns + `
	FROM products p LEFT JOIN categories c ON c.id = p.category_id`

// CreateProduct inserts a product.
func (s *SQLiteStore) CreateProduct(ctx context.Context, product *models.Product) error {
	tagsJSON, keywordsJSON, err := marshalArrays(product)
	if err != nil {
		return err
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, price, category_id, tags,
		 semantic_keywords, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID, product.Name, nullString(product.Description), product.Price,
		nullString(product.CategoryID), tagsJSON, keywordsJSON,
		boolToInt(product.IsActive), product.CreatedAt, product.UpdatedAt,
	)
	return err
}

// GetProduct returns a product by id with its category joined.
func (s *SQLiteStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	row := s.db.QueryRowContext(ctx, productSelect+` WHERE p.id = ?`, id)
	product, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return product, err
}

// UpdateProduct updates a product row.
func (s *SQLiteStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	tagsJSON, keywordsJSON, err := marshalArrays(product)
	if err != nil {
		return err
	}

	product.UpdatedAt = time.Now()

	res, err := s.db.ExecContext(ctx,
		`UPDATE products SET name = ?, description = ?, price = ?, category_id = ?,
		 tags = ?, semantic_keywords = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		product.Name, nullString(product.Description), product.Price,
		nullString(product.CategoryID), tagsJSON, keywordsJSON,
		boolToInt(product.IsActive), product.UpdatedAt, product.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product by id.
func (s *SQLiteStore) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListProducts runs a database-side sorted, paginated fetch. The returned
// count is the true number of rows matching the filter, independent of the
// page window.
func (s *SQLiteStore) ListProducts(ctx context.Context, filter ListFilter) ([]*models.Product, int, error) {
	where, args := buildFilter(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM products p` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := productSelect + where +
		` ORDER BY ` + sortColumn(filter.SortBy) + ` ` + sortDirection(filter.Order) +
		` LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// SearchCandidates returns up to limit rows whose name or description
// contains any of the terms, subject to the filter constraints.
func (s *SQLiteStore) SearchCandidates(ctx context.Context, terms []string, filter ListFilter, limit int) ([]*models.Product, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	where, args := buildFilter(filter)

	var termClauses []string
	for _, term := range terms {
		termClauses = append(termClauses,
			`instr(lower(p.name), ?) > 0`, `instr(lower(p.description), ?) > 0`)
		args = append(args, term, term)
	}
	termFilter := `(` + strings.Join(termClauses, ` OR `) + `)`
	if where == "" {
		where = ` WHERE ` + termFilter
	} else {
		where += ` AND ` + termFilter
	}

	query := productSelect + where + ` LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search candidates: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// CreateCategory inserts a category.
func (s *SQLiteStore) CreateCategory(ctx context.Context, category *models.Category) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, slug, parent_id, is_active) VALUES (?, ?, ?, ?, ?)`,
		category.ID, category.Name, category.Slug,
		nullString(category.ParentID), boolToInt(category.IsActive),
	)
	return err
}

// GetCategory returns a category by id.
func (s *SQLiteStore) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, slug, parent_id, is_active FROM categories WHERE id = ?`, id)
	category, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return category, err
}

// ListCategories returns all categories ordered by name.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]*models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, slug, parent_id, is_active FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// ChildCategoryIDs returns the ids of direct children of the given category.
func (s *SQLiteStore) ChildCategoryIDs(ctx context.Context, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM categories WHERE parent_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch child categories: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var childID string
		if err := rows.Scan(&childID); err != nil {
			return nil, err
		}
		ids = append(ids, childID)
	}
	return ids, rows.Err()
}

// CountProducts returns the total number of products.
func (s *SQLiteStore) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

// CountCategories returns the total number of categories.
func (s *SQLiteStore) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n)
	return n, err
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// buildFilter translates a ListFilter into a WHERE clause and its arguments.
func buildFilter(filter ListFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if !filter.IncludeInactive {
		clauses = append(clauses, `p.is_active = 1`)
	}
	if len(filter.CategoryIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(filter.CategoryIDs)), ",")
		clauses = append(clauses, `p.category_id IN (`+placeholders+`)`)
		for _, id := range filter.CategoryIDs {
			args = append(args, id)
		}
	}
	if filter.MinPrice > 0 {
		clauses = append(clauses, `p.price >= ?`)
		args = append(args, filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		clauses = append(clauses, `p.price <= ?`)
		args = append(args, filter.MaxPrice)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return ` WHERE ` + strings.Join(clauses, ` AND `), args
}

// sortColumn maps an API sort field to a safe ORDER BY column. The relevance
// sort has no database meaning, so it degrades to creation date here.
func sortColumn(sortBy string) string {
	switch sortBy {
	case models.SortPrice:
		return `p.price`
	case models.SortName:
		return `p.name COLLATE NOCASE`
	default:
		return `p.created_at`
	}
}

func sortDirection(order string) string {
	if order == models.OrderAsc {
		return `ASC`
	}
	return `DESC`
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		product      models.Product
		description  sql.NullString
		categoryID   sql.NullString
		tagsJSON     sql.NullString
		keywordsJSON sql.NullString
		isActive     int

		catID       sql.NullString
		catName     sql.NullString
		catSlug     sql.NullString
		catParentID sql.NullString
		catActive   sql.NullInt64
	)

	err := row.Scan(
		&product.ID, &product.Name, &description, &product.Price, &categoryID,
		&tagsJSON, &keywordsJSON, &isActive, &product.CreatedAt, &product.UpdatedAt,
		&catID, &catName, &catSlug, &catParentID, &catActive,
	)
	if err != nil {
		return nil, err
	}

	product.Description = description.String
	product.CategoryID = categoryID.String
	product.IsActive = isActive != 0

	if err := unmarshalArray(tagsJSON, &product.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags for product %s: %w", product.ID, err)
	}
	if err := unmarshalArray(keywordsJSON, &product.SemanticKeywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords for product %s: %w", product.ID, err)
	}

	if catID.Valid {
		product.Category = &models.Category{
			ID:       catID.String,
			Name:     catName.String,
			Slug:     catSlug.String,
			ParentID: catParentID.String,
			IsActive: catActive.Int64 != 0,
		}
	}
	return &product, nil
}

func scanProducts(rows *sql.Rows) ([]*models.Product, error) {
	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func scanCategory(row rowScanner) (*models.Category, error) {
	var (
		category models.Category
		parentID sql.NullString
		isActive int
	)
	if err := row.Scan(&category.ID, &category.Name, &category.Slug, &parentID, &isActive); err != nil {
		return nil, err
	}
	category.ParentID = parentID.String
	category.IsActive = isActive != 0
	return &category, nil
}

func marshalArrays(product *models.Product) (string, string, error) {
	tagsJSON, err := json.Marshal(emptyIfNil(product.Tags))
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal tags: %w", err)
	}
	keywordsJSON, err := json.Marshal(emptyIfNil(product.SemanticKeywords))
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal semantic keywords: %w", err)
	}
	return string(tagsJSON), string(keywordsJSON), nil
}

func unmarshalArray(col sql.NullString, dest *[]string) error {
	if !col.Valid || col.String == "" {
		*dest = nil
		return nil
	}
	return json.Unmarshal([]byte(col.String), dest)
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
