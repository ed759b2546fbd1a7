// models/filters.go
package models

import "github.com/shopspring/decimal"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortReviews   SortKey = "reviews"
)

// SortKeys lists every accepted sort key in display order.
var SortKeys = []SortKey{SortRelevance, SortPriceLow, SortPriceHigh, SortRating, SortReviews}

// Criteria drives catalog filtering. A nil price bound means "no bound"; an
// empty Categories slice means "any category".
type Criteria struct {
	Query      string
	Categories []string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       SortKey
}

// FilterMetadata represents all filter data for the storefront search sidebar
type FilterMetadata struct {
	Categories []string        `json:"categories"`
	PriceRange *PriceRangeData `json:"priceRange"`
	SortKeys   []SortKey       `json:"sortKeys"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min decimal.Decimal `json:"min" swaggertype:"number"`
	Max decimal.Decimal `json:"max" swaggertype:"number"`
}
