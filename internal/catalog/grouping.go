package catalog

import "strings"

const topPerCategory = 3

// CategoryGroup is one home-page section: a category and its first products
// in upstream order.
type CategoryGroup struct {
	Category string
	Products []Product
}

// GroupByCategory builds the home-page sections. Each category keeps at most
// three products, selected by upstream order; categories with fewer products
// simply get shorter lists. The section order follows the categories slice.
func GroupByCategory(products []Product, categories []string) []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(categories))
	for _, cat := range categories {
		g := CategoryGroup{Category: cat}
		for _, p := range products {
			if p.Category != cat {
				continue
			}
			g.Products = append(g.Products, p)
			if len(g.Products) == topPerCategory {
				break
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// Filter narrows products by exact category and case-insensitive title
// substring. Both filters are optional and compose with AND; empty results
// are valid.
func Filter(products []Product, category, query string) []Product {
	out := make([]Product, 0, len(products))
	q := strings.ToLower(query)
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Title), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
