package category_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/marketplace-storefront/catalog"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	catalog []models.Product
}

func New(catalog []models.Product) *Controller {
	return &Controller{catalog: catalog}
}

// GetCategories godoc
// @Summary Get categories
// @Description Categories present in the catalog (first-seen order) and the labels offered by the listing form
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.StorefrontCategories}
// @Router /store/categories [get]
func (ctl *Controller) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", models.StorefrontCategories{
		Catalog: catalog.Categories(ctl.catalog),
		Listing: models.ListingCategories,
	}))
}
