package tools

import (
	"fmt"
	"strings"

	"github.com/nchapman/convosage/internal/rag"
)

const productTopK = 3

// ProductSearch answers drinkware questions by ranking products from the
// vector store and formatting the matches into a chat reply.
type ProductSearch struct {
	store *rag.Store
}

func NewProductSearch(store *rag.Store) *ProductSearch {
	return &ProductSearch{store: store}
}

// Run searches for products matching the query and returns a formatted
// response suitable for showing directly to the user.
func (p *ProductSearch) Run(query string) string {
	results := p.store.Search(query, productTopK)
	if len(results) == 0 {
		return "I couldn't find any products matching your query. We have tumblers, bottles, mugs, and other drinkware available."
	}

	parts := []string{fmt.Sprintf("I found %d products that match your query:\n", len(results))}

	for i, product := range results {
		parts = append(parts,
			fmt.Sprintf("\n%d. **%s**", i+1, product.Name),
			fmt.Sprintf("   - Price: RM %.2f", product.PriceMYR),
			fmt.Sprintf("   - Capacity: %dml", product.CapacityML),
			fmt.Sprintf("   - Material: %s", product.Material))

		if len(product.Colors) > 0 {
			colors := product.Colors
			if len(colors) > 3 {
				colors = colors[:3]
			}
			parts = append(parts, fmt.Sprintf("   - Colors: %s", strings.Join(colors, ", ")))
		}

		if product.Description != "" {
			parts = append(parts, fmt.Sprintf("   - Description: %s", truncate(product.Description, 100)))
		}

		if !product.InStock {
			parts = append(parts, "   - **Currently out of stock**")
		}
	}

	return strings.Join(parts, "\n")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
