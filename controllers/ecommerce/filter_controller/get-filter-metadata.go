package filter_controller

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

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns categories, price range and sort keys for storefront filters
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func (ctl *Controller) GetFilterMetadata(c *gin.Context) {
	metadata := models.FilterMetadata{
		Categories: catalog.Categories(ctl.catalog),
		PriceRange: catalog.PriceRange(ctl.catalog),
		SortKeys:   models.SortKeys,
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata retrieved successfully", metadata))
}
