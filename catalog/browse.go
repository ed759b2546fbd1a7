package catalog

import (
	"cmp"
	"slices"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
)

// FindByID returns the product with the given id. A miss is reported through
// ok, not an error: the detail page renders it as "not found".
func FindByID(all []models.Product, id string) (models.Product, bool) {
	for _, p := range all {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Categories returns the distinct product categories in first-seen order.
func Categories(all []models.Product) []string {
	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0)
	for _, p := range all {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// PriceRange returns the cheapest and most expensive price in the catalog, or
// nil for an empty catalog.
func PriceRange(all []models.Product) *models.PriceRangeData {
	if len(all) == 0 {
		return nil
	}
	r := &models.PriceRangeData{Min: all[0].Price, Max: all[0].Price}
	for _, p := range all[1:] {
		if p.Price.LessThan(r.Min) {
			r.Min = p.Price
		}
		if p.Price.GreaterThan(r.Max) {
			r.Max = p.Price
		}
	}
	return r
}

// Featured returns the first n products in catalog order.
func Featured(all []models.Product, n int) []models.Product {
	n = min(max(n, 0), len(all))
	return slices.Clone(all[:n])
}

// TopRated returns the n highest-rated products, ties in catalog order. The
// catalog itself is left untouched.
func TopRated(all []models.Product, n int) []models.Product {
	sorted := slices.Clone(all)
	slices.SortStableFunc(sorted, func(a, b models.Product) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	n = min(max(n, 0), len(sorted))
	return sorted[:n]
}
