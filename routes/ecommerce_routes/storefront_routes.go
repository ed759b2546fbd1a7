package ecommerce_routes

import (
	store_category "github.com/Modeva-Ecommerce/marketplace-storefront/controllers/ecommerce/category_controller"
	store_filter "github.com/Modeva-Ecommerce/marketplace-storefront/controllers/ecommerce/filter_controller"
	store_product "github.com/Modeva-Ecommerce/marketplace-storefront/controllers/ecommerce/product_controller"
	store_review "github.com/Modeva-Ecommerce/marketplace-storefront/controllers/ecommerce/review_controller"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupStorefrontRoutes(router *gin.RouterGroup, catalog []models.Product, log *zap.Logger) {
	productCtl := store_product.New(catalog, log)
	reviewCtl := store_review.New(catalog, log)
	categoryCtl := store_category.New(catalog)
	filterCtl := store_filter.New(catalog)

	store := router.Group("/store")

	store.GET("/home", productCtl.GetStorefrontHome)

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", productCtl.GetStorefrontProducts)         // Search with filters
		products.GET("/:id", productCtl.GetStorefrontProductByID) // Single product + session reviews
		products.POST("/:id/cart", productCtl.AddToCart)

		products.GET("/:id/reviews", reviewCtl.GetProductReviews)
		products.POST("/:id/reviews", reviewCtl.SubmitReview)
	}

	store.GET("/categories", categoryCtl.GetCategories)
	store.GET("/filters/metadata", filterCtl.GetFilterMetadata)
}
