package product_controller

import (
	"fmt"
	"net/http"

	"github.com/Modeva-Ecommerce/marketplace-storefront/catalog"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/services"
	"github.com/gin-gonic/gin"
)

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Confirms with a notification. No cart state is kept.
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 404 {object} models.ApiResponse{data=models.NotFoundResponse}
// @Router /store/products/{id}/cart [post]
func (ctl *Controller) AddToCart(c *gin.Context) {
	id := c.Param("id")

	product, ok := catalog.FindByID(ctl.catalog, id)
	if !ok {
		c.JSON(http.StatusNotFound, ProductNotFound(c, id))
		return
	}

	services.NewContextNotifier(c, ctl.log).Notify(
		"Added to Cart!",
		fmt.Sprintf("%s has been added to your cart.", product.Name),
		false,
	)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product added to cart", models.CartResponse{
		ProductID: product.ID,
		Name:      product.Name,
	}))
}
