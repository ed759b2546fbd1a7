// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

import "github.com/shopspring/decimal"

// StorefrontProductResponse is the thin product card used by listings
type StorefrontProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price" swaggertype:"number"`
	Rating   float64         `json:"rating"`
	Reviews  int             `json:"reviews"`
	Category string          `json:"category"`
}

// NewProductCard projects a catalog product onto its card representation.
func NewProductCard(p Product) StorefrontProductResponse {
	return StorefrontProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Image:    p.Image,
		Price:    p.Price,
		Rating:   p.Rating,
		Reviews:  p.Reviews,
		Category: p.Category,
	}
}

// NewProductCards maps products to cards, preserving order.
func NewProductCards(products []Product) []StorefrontProductResponse {
	cards := make([]StorefrontProductResponse, 0, len(products))
	for _, p := range products {
		cards = append(cards, NewProductCard(p))
	}
	return cards
}

// StorefrontHome is the landing page payload
type StorefrontHome struct {
	Featured []StorefrontProductResponse `json:"featured"`
	TopRated []StorefrontProductResponse `json:"topRated"`
}

// StorefrontCategories lists the browsable catalog categories and the labels a
// seller may choose from when listing a product.
type StorefrontCategories struct {
	Catalog []string `json:"catalog"`
	Listing []string `json:"listing"`
}

// CartResponse echoes the product that was "added to cart". There is no cart state.
type CartResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
}
