package product_controller

import (
	"strings"

	"github.com/Modeva-Ecommerce/marketplace-storefront/catalog"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// criteriaFromQuery reads search criteria from the query string. Malformed
// prices and unknown sort keys degrade to "no restriction" and relevance.
//
//	?q=backpack&category=Electronics&category=Accessories&minPrice=10&maxPrice=900&sortBy=price-low
func criteriaFromQuery(c *gin.Context) models.Criteria {
	return models.Criteria{
		Query:      c.Query("q"),
		Categories: queryCategories(c),
		MinPrice:   catalog.ParsePriceBound(c.Query("minPrice")),
		MaxPrice:   catalog.ParsePriceBound(c.Query("maxPrice")),
		Sort:       catalog.ParseSortKey(c.Query("sortBy")),
	}
}

// queryCategories accepts both repeated (?category=a&category=b) and comma
// separated (?category=a,b) forms. Labels such as "Home & Office" must be
// URL-encoded.
func queryCategories(c *gin.Context) []string {
	var out []string
	for _, raw := range c.QueryArray("category") {
		for _, label := range strings.Split(raw, ",") {
			if label = strings.TrimSpace(label); label != "" {
				out = append(out, label)
			}
		}
	}
	return out
}
