package product_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/marketplace-storefront/catalog"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetStorefrontProducts godoc
// @Summary Search the catalog
// @Description Filters by free text, categories and an inclusive price range, then sorts. No pagination.
// @Tags store
// @Produce json
// @Param q query string false "Free text, matched case-insensitively against name, description and category"
// @Param category query []string false "Category labels (repeatable)" collectionFormat(multi)
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Param sortBy query string false "Sort key" Enums(relevance, price-low, price-high, rating, reviews)
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontProductResponse,meta=models.ResultMeta}
// @Router /store/products [get]
func (ctl *Controller) GetStorefrontProducts(c *gin.Context) {
	criteria := criteriaFromQuery(c)
	results := catalog.FilterAndSort(ctl.catalog, criteria)

	ctl.log.Debug("catalog search",
		zap.String("q", criteria.Query),
		zap.Strings("categories", criteria.Categories),
		zap.String("sort", string(criteria.Sort)),
		zap.Int("results", len(results)),
	)

	c.JSON(http.StatusOK, models.ListResponse(c, "Products retrieved successfully", models.NewProductCards(results), len(results)))
}
