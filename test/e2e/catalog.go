// Package e2e provides end-to-end tests that drive the HTTP API against a
// seeded catalog.
package e2e

import (
	"fmt"

	"github.com/quickcart/storesearch/internal/models"
)

// QueryTestCase defines a search query and the product ID(s) that must appear
// in the results. At least one of ExpectedProductIDs must be present.
type QueryTestCase struct {
	Query              string
	CategoryID         string
	ExpectedProductIDs []string
	Description        string
}

// Catalog holds categories, products, and query test cases for E2E tests.
type Catalog struct {
	Categories []*models.CategoryInput
	Products   []*models.ProductInput
	TestCases  []QueryTestCase
}

// BuildCatalog returns a storefront catalog with a two-level category tree,
// products spread across it, and query test cases covering literal matches,
// synonym expansion, and category filtering.
func BuildCatalog() *Catalog {
	categories := []*models.CategoryInput{
		{ID: "1", Name: "Electronics"},
		{ID: "101", Name: "Smartphones", ParentID: "1"},
		{ID: "102", Name: "Laptops", ParentID: "1"},
		{ID: "2", Name: "Sports & Outdoors"},
		{ID: "3", Name: "Home Furniture"},
		{ID: "4", Name: "Kitchen Appliances"},
	}

	products := []*models.ProductInput{
		{ID: "iphone-15", Name: "iPhone 15 Pro", Description: "Apple flagship with titanium frame",
			Price: 999, CategoryID: "101", Tags: []string{"iphone", "apple", "smartphone"}},
		{ID: "pixel-9", Name: "Pixel 9", Description: "Google handset with a clean camera",
			Price: 799, CategoryID: "101", Tags: []string{"google", "android"}},
		{ID: "macbook-air", Name: "MacBook Air", Description: "Thin and light notebook for everyday work",
			Price: 1099, CategoryID: "102", Tags: []string{"apple", "laptop"}},
		{ID: "thinkpad", Name: "ThinkPad X1 Carbon", Description: "Business ultrabook with a great keyboard",
			Price: 1399, CategoryID: "102", Tags: []string{"lenovo", "laptop"}},
		{ID: "oled-tv", Name: "OLED Smart TV 55", Description: "Cinema-grade television with deep blacks",
			Price: 1299, CategoryID: "1", Tags: []string{"tv", "oled"}},
		{ID: "earbuds", Name: "Wireless Earbuds", Description: "Noise-cancelling earphones with long battery life",
			Price: 149, CategoryID: "1", Tags: []string{"audio", "headphones"}},
		{ID: "yoga-mat", Name: "Yoga Mat Premium", Description: "Non-slip exercise mat for pilates and stretching",
			Price: 29, CategoryID: "2", Tags: []string{"yoga", "fitness"}},
		{ID: "trail-shoes", Name: "Trail Running Shoes", Description: "Grippy sneakers for off-road runs",
			Price: 119, CategoryID: "2", Tags: []string{"running", "footwear"}},
		{ID: "mtb", Name: "Mountain Bike 29er", Description: "Hardtail bicycle for forest trails",
			Price: 749, CategoryID: "2", Tags: []string{"cycling", "outdoor"}},
		{ID: "sofa-3s", Name: "Three-Seater Sofa", Description: "Fabric couch with removable covers",
			Price: 699, CategoryID: "3", Tags: []string{"living room", "couch"}},
		{ID: "oak-table", Name: "Oak Dining Table", Description: "Solid wood desk-height table for six",
			Price: 459, CategoryID: "3", Tags: []string{"dining", "wood"}},
		{ID: "floor-lamp", Name: "Arc Floor Lamp", Description: "Dimmable light for reading corners",
			Price: 89, CategoryID: "3", Tags: []string{"lighting"}},
		{ID: "fridge-fr", Name: "French Door Fridge", Description: "Spacious refrigerator with ice maker",
			Price: 1599, CategoryID: "4", Tags: []string{"cooling", "kitchen"}},
		{ID: "blender-pro", Name: "Pro Blender 1200W", Description: "High-power mixer for smoothies and soups",
			Price: 129, CategoryID: "4", Tags: []string{"smoothie", "kitchen"}},
		{ID: "kettle-el", Name: "Electric Kettle", Description: "Fast-boil teapot with temperature control",
			Price: 39, CategoryID: "4", Tags: []string{"tea", "kitchen"}},
	}

	cases := []QueryTestCase{
		{
			Query:              "iphone",
			ExpectedProductIDs: []string{"iphone-15"},
			Description:        "literal name match",
		},
		{
			Query:              "smartphone",
			ExpectedProductIDs: []string{"iphone-15", "pixel-9"},
			Description:        "synonym group reaches both handsets",
		},
		{
			Query:              "notebook",
			ExpectedProductIDs: []string{"macbook-air", "thinkpad"},
			Description:        "laptop synonyms match name and description",
		},
		{
			Query:              "television",
			ExpectedProductIDs: []string{"oled-tv"},
			Description:        "tv synonym hits the description",
		},
		{
			Query:              "couch",
			ExpectedProductIDs: []string{"sofa-3s"},
			Description:        "sofa synonym",
		},
		{
			Query:              "pilates mat",
			ExpectedProductIDs: []string{"yoga-mat"},
			Description:        "multi-word query",
		},
		{
			Query:              "sneakers",
			ExpectedProductIDs: []string{"trail-shoes"},
			Description:        "shoes synonym in description",
		},
		{
			Query:              "bicycle",
			ExpectedProductIDs: []string{"mtb"},
			Description:        "bike synonym",
		},
		{
			Query:              "refrigerator",
			ExpectedProductIDs: []string{"fridge-fr"},
			Description:        "fridge synonym",
		},
		{
			Query:              "phone",
			CategoryID:         "1",
			ExpectedProductIDs: []string{"iphone-15", "pixel-9"},
			Description:        "parent category widens to subcategory products",
		},
	}

	return &Catalog{Categories: categories, Products: products, TestCases: cases}
}

// BuildBulkProducts returns n generated phone accessories, for tests that
// need more matching rows than the scoring cap.
func BuildBulkProducts(n int) []*models.ProductInput {
	products := make([]*models.ProductInput, n)
	for i := range products {
		products[i] = &models.ProductInput{
			ID:          fmt.Sprintf("bulk-phone-%03d", i),
			Name:        fmt.Sprintf("Phone Case Model %03d", i),
			Description: "Protective cover",
			Price:       float64(5 + i%20),
			CategoryID:  "101",
		}
	}
	return products
}
