// Package models defines core data structures for products, categories, and search.
package models

import "time"

// Product represents a catalog product row together with its joined category.
// Tags and SemanticKeywords are denormalized arrays stored as JSON on the row;
// SemanticKeywords is written by the keyword generator on create/update and
// read back by the semantic scorer at search time.
type Product struct {
	ID               string    `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Description      string    `json:"description,omitempty" db:"description"`
	Price            float64   `json:"price" db:"price"`
	CategoryID       string    `json:"categoryId,omitempty" db:"category_id"`
	Category         *Category `json:"category,omitempty" db:"-"`
	Tags             []string  `json:"tags" db:"-"`
	SemanticKeywords []string  `json:"semantic_keywords" db:"-"`
	IsActive         bool      `json:"isActive" db:"is_active"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// CategoryName returns the joined category name, or "" when the relation
// was not loaded.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// ProductInput is the input for creating or updating a product.
type ProductInput struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	CategoryID  string   `json:"categoryId,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}
