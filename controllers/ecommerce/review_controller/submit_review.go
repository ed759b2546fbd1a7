package review_controller

import (
	"errors"
	"net/http"

	"github.com/Modeva-Ecommerce/marketplace-storefront/catalog"
	"github.com/Modeva-Ecommerce/marketplace-storefront/controllers/ecommerce/product_controller"
	"github.com/Modeva-Ecommerce/marketplace-storefront/middleware"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/reviews"
	"github.com/Modeva-Ecommerce/marketplace-storefront/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmitReview godoc
// @Summary Submit a review
// @Description Adds a review to the caller's session. Ratings outside 1..5 are clamped; a missing rating counts as 5.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param review body models.ReviewRequest true "Review"
// @Success 201 {object} models.ApiResponse{data=models.Review}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse{data=models.NotFoundResponse}
// @Failure 422 {object} models.ApiResponse
// @Router /store/products/{id}/reviews [post]
func (ctl *Controller) SubmitReview(c *gin.Context) {
	id := c.Param("id")
	notifier := services.NewContextNotifier(c, ctl.log)

	if _, ok := catalog.FindByID(ctl.catalog, id); !ok {
		c.JSON(http.StatusNotFound, product_controller.ProductNotFound(c, id))
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		notifier.Notify("Error", "Invalid review", true)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if req.Rating == 0 {
		req.Rating = defaultRating
	}

	sess, ok := middleware.GetSession(c)
	if !ok {
		ctl.log.Error("review submitted without a session")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	var (
		review models.Review
		err    error
	)
	sess.WithLedger(func(l *reviews.Ledger) {
		review, err = l.Submit(id, req.Rating, req.Comment)
	})

	if errors.Is(err, reviews.ErrEmptyComment) {
		_ = c.Error(err)
		notifier.Notify("Error", "Please write a comment before submitting your review", true)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Review comment is required"))
		return
	}
	if err != nil {
		_ = c.Error(err)
		ctl.log.Error("failed to submit review", zap.String("product", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit review"))
		return
	}

	notifier.Notify("Review Submitted!", "Thank you for your feedback.", false)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review submitted successfully", review))
}
