package listing_controller

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Controller accepts seller listings. Listings and images are validated and
// echoed back, never stored.
type Controller struct {
	images       *services.ImageIntake
	maxFormBytes int64
	log          *zap.Logger
}

func New(images *services.ImageIntake, maxFormBytes int64, log *zap.Logger) *Controller {
	return &Controller{images: images, maxFormBytes: maxFormBytes, log: log}
}

// CreateListing godoc
// @Summary List a product for sale
// @Description Multipart form. Up to five images are kept; non-images and oversized files are dropped.
// @Tags seller
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param category formData string true "Category" Enums(Electronics, Accessories, Home & Office, Fashion, Sports, Books)
// @Param price formData number true "Price"
// @Param description formData string true "Description"
// @Param features formData []string false "Feature bullet points" collectionFormat(multi)
// @Param images formData file true "Product images (first is the main image)"
// @Success 201 {object} models.ApiResponse{data=models.ListingResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 413 {object} models.ApiResponse
// @Router /seller/products [post]
func (ctl *Controller) CreateListing(c *gin.Context) {
	notifier := services.NewContextNotifier(c, ctl.log)
	fail := func(status int, err error) {
		_ = c.Error(err)
		notifier.Notify("Error", services.FormErrorMessage(err), true)
		c.JSON(status, models.ErrorResponse(c, "Invalid listing"))
	}

	if ctl.maxFormBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ctl.maxFormBytes)
	}

	var req models.ListingRequest
	if err := c.ShouldBind(&req); err != nil {
		ctl.log.Debug("listing form rejected", zap.Error(err))
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(http.StatusRequestEntityTooLarge, fmt.Errorf("%w: limit %d bytes", services.ErrFormTooLarge, tooLarge.Limit))
			return
		}
		fail(http.StatusBadRequest, services.ErrMissingFields)
		return
	}

	listing, err := services.ValidateListing(req)
	if err != nil {
		fail(http.StatusBadRequest, err)
		return
	}

	var uploads []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		uploads = form.File["images"]
	}
	images, err := ctl.images.Collect(uploads)
	if err != nil {
		fail(http.StatusBadRequest, err)
		return
	}

	ctl.log.Info("product listed",
		zap.String("name", listing.Name),
		zap.String("category", listing.Category),
		zap.Int("images", len(images)),
	)
	notifier.Notify("Product Listed!", "Your product has been successfully uploaded to the marketplace.", false)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product listed successfully", models.ListingResponse{
		Name:        listing.Name,
		Category:    listing.Category,
		Price:       listing.Price.StringFixed(2),
		Description: listing.Description,
		Features:    listing.Features,
		Images:      images,
	}))
}
