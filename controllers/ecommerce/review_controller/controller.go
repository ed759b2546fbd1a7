package review_controller

import (
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"go.uber.org/zap"
)

// defaultRating is what the review form starts at when no rating is picked.
const defaultRating = 5

// Controller reads and writes the review ledger of the caller's session.
type Controller struct {
	catalog []models.Product
	log     *zap.Logger
}

func New(catalog []models.Product, log *zap.Logger) *Controller {
	return &Controller{catalog: catalog, log: log}
}
