package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers (199.99), not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ═══════════════════════════════════════════════════════════
// Catalog Product (seed data, immutable at runtime)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Price       decimal.Decimal `json:"price" yaml:"price" swaggertype:"number" example:"199.99"`
	Image       string          `json:"image" yaml:"image"`
	Rating      float64         `json:"rating" yaml:"rating" example:"4.5"`
	Reviews     int             `json:"reviews" yaml:"reviews" example:"128"`
	Category    string          `json:"category" yaml:"category" example:"Electronics"`
	Description string          `json:"description" yaml:"description"`
	Features    []string        `json:"features" yaml:"features"`
	Seller      string          `json:"seller" yaml:"seller"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// ProductDetailResponse is the product detail view: the product plus the
// reviews visible to the caller's session.
type ProductDetailResponse struct {
	Product Product  `json:"product"`
	Reviews []Review `json:"reviews"`
}

// NotFoundResponse is returned for unknown product ids; the storefront renders
// it as a normal "not found" page with a way back to the catalog.
type NotFoundResponse struct {
	ID    string            `json:"id"`
	Links map[string]string `json:"links"`
}
