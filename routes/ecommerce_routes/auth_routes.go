package ecommerce_routes

import (
	"github.com/Modeva-Ecommerce/marketplace-storefront/controllers/ecommerce/auth_controller"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupAuthRoutes sets up the sign-in and create-account forms
func SetupAuthRoutes(router *gin.RouterGroup, log *zap.Logger) {
	ctl := auth_controller.New(log)

	auth := router.Group("/auth")
	{
		auth.POST("/login", ctl.Login)
		auth.POST("/register", ctl.Register)
	}
}
