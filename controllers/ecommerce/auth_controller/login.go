package auth_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Login godoc
// @Summary Sign in
// @Description Validates the sign-in form and confirms with a notification
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Sign-in form"
// @Success 200 {object} models.ApiResponse{data=models.AccountResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /auth/login [post]
func (ctl *Controller) Login(c *gin.Context) {
	notifier := services.NewContextNotifier(c, ctl.log)

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		notifier.Notify("Error", "Please enter a valid email and password", true)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid login form"))
		return
	}

	account, err := services.ValidateLogin(req)
	if err != nil {
		_ = c.Error(err)
		notifier.Notify("Error", services.FormErrorMessage(err), true)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid login form"))
		return
	}

	ctl.log.Info("shopper signed in", zap.String("email", account.Email))
	notifier.Notify("Login Successful!", "Welcome back to MarketPlace", false)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", account))
}
