package product_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/marketplace-storefront/catalog"
	"github.com/Modeva-Ecommerce/marketplace-storefront/middleware"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/reviews"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductByID godoc
// @Summary Get single product details for storefront
// @Description Product details plus the reviews visible in the caller's session, newest first
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.ProductDetailResponse}
// @Failure 404 {object} models.ApiResponse{data=models.NotFoundResponse}
// @Router /store/products/{id} [get]
func (ctl *Controller) GetStorefrontProductByID(c *gin.Context) {
	id := c.Param("id")

	product, ok := catalog.FindByID(ctl.catalog, id)
	if !ok {
		c.JSON(http.StatusNotFound, ProductNotFound(c, id))
		return
	}

	detail := models.ProductDetailResponse{Product: product, Reviews: []models.Review{}}
	if sess, ok := middleware.GetSession(c); ok {
		sess.WithLedger(func(l *reviews.Ledger) {
			detail.Reviews = l.ListForProduct(id)
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved successfully", detail))
}

// ProductNotFound is the "not found" display branch shared by every
// per-product route.
func ProductNotFound(c *gin.Context, id string) models.ApiResponse {
	return models.ErrorResponseWithData(c, "Product not found", models.NotFoundResponse{
		ID: id,
		Links: map[string]string{
			"back": "/search",
			"home": "/",
		},
	})
}
