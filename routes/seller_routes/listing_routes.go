package seller_routes

import (
	"github.com/Modeva-Ecommerce/marketplace-storefront/controllers/seller/listing_controller"
	"github.com/Modeva-Ecommerce/marketplace-storefront/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupListingRoutes(router *gin.RouterGroup, images *services.ImageIntake, maxFormBytes int64, log *zap.Logger) {
	ctl := listing_controller.New(images, maxFormBytes, log)

	seller := router.Group("/seller")
	{
		seller.POST("/products", ctl.CreateListing)
	}
}
