package review_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/marketplace-storefront/catalog"
	"github.com/Modeva-Ecommerce/marketplace-storefront/controllers/ecommerce/product_controller"
	"github.com/Modeva-Ecommerce/marketplace-storefront/middleware"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/reviews"
	"github.com/gin-gonic/gin"
)

// GetProductReviews godoc
// @Summary List reviews for a product
// @Description Seed reviews plus those submitted in this session, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=[]models.Review,meta=models.ResultMeta}
// @Failure 404 {object} models.ApiResponse{data=models.NotFoundResponse}
// @Router /store/products/{id}/reviews [get]
func (ctl *Controller) GetProductReviews(c *gin.Context) {
	id := c.Param("id")
	if _, ok := catalog.FindByID(ctl.catalog, id); !ok {
		c.JSON(http.StatusNotFound, product_controller.ProductNotFound(c, id))
		return
	}

	list := []models.Review{}
	if sess, ok := middleware.GetSession(c); ok {
		sess.WithLedger(func(l *reviews.Ledger) {
			list = l.ListForProduct(id)
		})
	}

	c.JSON(http.StatusOK, models.ListResponse(c, "Reviews retrieved successfully", list, len(list)))
}
