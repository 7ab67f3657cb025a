// Package cli provides output helpers for the storesearch command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/quickcart/storesearch/internal/models"
	"github.com/quickcart/storesearch/pkg/utils"
)

// OutputFormat is the format for search result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteProductResults writes a product search response to w in the given
// format. Use OutputJSON for parseable output consumable by other apps.
func WriteProductResults(w io.Writer, response *models.ProductResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeProductResultsText(w, response)
		return nil
	}
}

func writeProductResultsText(w io.Writer, response *models.ProductResponse) {
	fmt.Fprintf(w, "\n%d results (%s search, page %d/%d)\n",
		response.Pagination.Total, response.SearchInfo.Type,
		response.Pagination.Page, response.Pagination.Pages)
	if response.SearchInfo.Type == models.SearchTypeHybrid {
		fmt.Fprintf(w, "Query %q expanded to %d terms\n",
			response.SearchInfo.OriginalQuery, response.SearchInfo.TermCount)
	}
	fmt.Fprintln(w)

	offset := (response.Pagination.Page - 1) * response.Pagination.Limit
	for i, product := range response.Products {
		fmt.Fprintf(w, "%3d. %s  $%.2f", offset+i+1, product.Name, product.Price)
		if product.RelevanceScore > 0 {
			fmt.Fprintf(w, "  (score %.1f: keyword %.1f, semantic %.1f)",
				product.RelevanceScore, product.KeywordScore, product.SemanticScore)
		}
		fmt.Fprintln(w)
		if name := product.CategoryName(); name != "" {
			fmt.Fprintf(w, "     [%s]\n", name)
		}
		if product.Description != "" {
			fmt.Fprintf(w, "     %s\n", utils.Truncate(product.Description, 120))
		}
	}
}
