package catalog

import "math"

// CategoryCount pairs a category with its product count. Kept as a slice so
// the dashboard preserves first-seen order.
type CategoryCount struct {
	Category string
	Count    int
}

// Stats are the dashboard aggregates over the full catalog.
type Stats struct {
	Total          int
	AveragePrice   float64 // rounded to 2 decimal places
	MostExpensive  Product // first product with the maximum price
	Cheapest       Product // first product with the minimum price
	CategoryCounts []CategoryCount
}

// ComputeStats aggregates in a single pass. ok is false for an empty catalog;
// the average and min/max are undefined there and callers must render a
// "no data" state instead.
func ComputeStats(products []Product) (Stats, bool) {
	if len(products) == 0 {
		return Stats{}, false
	}

	s := Stats{
		Total:         len(products),
		MostExpensive: products[0],
		Cheapest:      products[0],
	}

	sum := 0.0
	countIdx := make(map[string]int, 8)
	for _, p := range products {
		sum += p.Price
		// Strict comparisons keep the first product on price ties.
		if p.Price > s.MostExpensive.Price {
			s.MostExpensive = p
		}
		if p.Price < s.Cheapest.Price {
			s.Cheapest = p
		}
		if i, ok := countIdx[p.Category]; ok {
			s.CategoryCounts[i].Count++
		} else {
			countIdx[p.Category] = len(s.CategoryCounts)
			s.CategoryCounts = append(s.CategoryCounts, CategoryCount{Category: p.Category, Count: 1})
		}
	}

	s.AveragePrice = math.Round(sum/float64(s.Total)*100) / 100
	return s, true
}
