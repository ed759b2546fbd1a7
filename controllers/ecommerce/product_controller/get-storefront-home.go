package product_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/marketplace-storefront/catalog"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontHome godoc
// @Summary Get the storefront landing page
// @Description Featured products (catalog order) and the top rated products
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.StorefrontHome}
// @Router /store/home [get]
func (ctl *Controller) GetStorefrontHome(c *gin.Context) {
	home := models.StorefrontHome{
		Featured: models.NewProductCards(catalog.Featured(ctl.catalog, featuredCount)),
		TopRated: models.NewProductCards(catalog.TopRated(ctl.catalog, topRatedCount)),
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Storefront home retrieved successfully", home))
}
