package product_controller

import (
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"go.uber.org/zap"
)

const (
	featuredCount = 6
	topRatedCount = 3
)

// Controller serves the read-only catalog. The catalog slice is never mutated.
type Controller struct {
	catalog []models.Product
	log     *zap.Logger
}

func New(catalog []models.Product, log *zap.Logger) *Controller {
	return &Controller{catalog: catalog, log: log}
}
