package auth_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Register godoc
// @Summary Create an account
// @Description Validates the create-account form. Password and confirmation must match.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body models.RegisterRequest true "Create-account form"
// @Success 201 {object} models.ApiResponse{data=models.AccountResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /auth/register [post]
func (ctl *Controller) Register(c *gin.Context) {
	notifier := services.NewContextNotifier(c, ctl.log)

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		notifier.Notify("Error", services.FormErrorMessage(services.ErrMissingFields), true)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid registration form"))
		return
	}

	account, err := services.ValidateRegistration(req)
	if err != nil {
		_ = c.Error(err)
		notifier.Notify("Error", services.FormErrorMessage(err), true)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid registration form"))
		return
	}

	ctl.log.Info("shopper registered", zap.String("email", account.Email))
	notifier.Notify("Account Created!", "Welcome to MarketPlace", false)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", account))
}
