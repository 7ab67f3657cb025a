package models

// Category represents a product category. Nesting is one level deep: every
// non-root category's ParentID points at a root category.
type Category struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Slug     string `json:"slug" db:"slug"`
	ParentID string `json:"parentId,omitempty" db:"parent_id"`
	IsActive bool   `json:"isActive" db:"is_active"`
}

// CategoryNode is a root category together with its direct children, as
// returned by the category tree endpoint. One level deep, matching the
// search-side category resolution.
type CategoryNode struct {
	*Category
	Children []*Category `json:"children"`
}

// CategoryInput is the input for creating a category.
type CategoryInput struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	ParentID string `json:"parentId,omitempty"`
}
