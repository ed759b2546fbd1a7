// Package catalog implements the storefront's product search: text, category
// and price filtering followed by a stable sort. Every function here is pure;
// callers own the product slice and it is never modified.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// FilterAndSort returns every product in all that satisfies the criteria, in
// catalog order, then stably ordered by the criteria's sort key.
func FilterAndSort(all []models.Product, c models.Criteria) []models.Product {
	m := newMatcher(c)

	out := make([]models.Product, 0, len(all))
	for _, p := range all {
		if m.match(p) {
			out = append(out, p)
		}
	}

	sortProducts(out, c.Sort)
	return out
}

type matcher struct {
	fold       cases.Caser
	query      string
	categories map[string]struct{}
	min, max   *decimal.Decimal
}

func newMatcher(c models.Criteria) *matcher {
	m := &matcher{
		fold: cases.Fold(),
		min:  c.MinPrice,
		max:  c.MaxPrice,
	}
	if q := strings.TrimSpace(c.Query); q != "" {
		m.query = m.fold.String(q)
	}
	if len(c.Categories) > 0 {
		m.categories = make(map[string]struct{}, len(c.Categories))
		for _, cat := range c.Categories {
			m.categories[cat] = struct{}{}
		}
	}
	return m
}

func (m *matcher) match(p models.Product) bool {
	return m.matchText(p) && m.matchCategory(p) && m.matchPrice(p)
}

func (m *matcher) matchText(p models.Product) bool {
	if m.query == "" {
		return true
	}
	return strings.Contains(m.fold.String(p.Name), m.query) ||
		strings.Contains(m.fold.String(p.Description), m.query) ||
		strings.Contains(m.fold.String(p.Category), m.query)
}

func (m *matcher) matchCategory(p models.Product) bool {
	if m.categories == nil {
		return true
	}
	_, ok := m.categories[p.Category]
	return ok
}

func (m *matcher) matchPrice(p models.Product) bool {
	if m.min != nil && p.Price.LessThan(*m.min) {
		return false
	}
	if m.max != nil && p.Price.GreaterThan(*m.max) {
		return false
	}
	return true
}

// sortProducts stably reorders products in place. Relevance keeps filter order.
func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceLow:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case models.SortPriceHigh:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case models.SortRating:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case models.SortReviews:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(b.Reviews, a.Reviews)
		})
	}
}

// ParseSortKey maps a query value onto a sort key; anything unrecognised is
// relevance.
func ParseSortKey(s string) models.SortKey {
	key := models.SortKey(strings.TrimSpace(s))
	if slices.Contains(models.SortKeys, key) {
		return key
	}
	return models.SortRelevance
}

// ParsePriceBound parses a price bound from form input. Blank or non-numeric
// input yields nil, which imposes no restriction.
func ParsePriceBound(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
