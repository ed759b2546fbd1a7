package middleware

import (
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/services"
	"github.com/Modeva-Ecommerce/marketplace-storefront/utils"
	"github.com/gin-gonic/gin"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// segmentToResourceType maps the last static route segment to a resource type
var segmentToResourceType = map[string]string{
	"reviews":  models.ResourceTypeReview,
	"cart":     models.ResourceTypeCart,
	"products": models.ResourceTypeListing,
	"login":    models.ResourceTypeAccount,
	"register": models.ResourceTypeAccount,
}

// segmentToActionVerb names the action for each write route
var segmentToActionVerb = map[string]string{
	"reviews":  "submitted",
	"cart":     "added",
	"products": "listed",
	"login":    "logged_in",
	"register": "registered",
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware records every storefront write action after the
// handler ran. GET requests are skipped. Must run after SessionMiddleware.
func ActivityLoggingMiddleware(svc *services.ActivityLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		segment := lastStaticSegment(c.FullPath())
		resourceType, known := segmentToResourceType[segment]

		c.Next()

		if !known {
			return
		}

		statusCode := c.Writer.Status()
		errorMsg := ""
		if statusCode >= 400 {
			errorMsg = "Request failed with status " + http.StatusText(statusCode)
			if last := c.Errors.Last(); last != nil {
				errorMsg = last.Error()
			}
		}

		svc.LogActivity(services.LogActivityRequest{
			SessionID:    GetSessionID(c),
			Action:       segmentToActionVerb[segment] + "_" + resourceType,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			StatusCode:   statusCode,
			ErrorMessage: errorMsg,
			Client:       utils.DescribeClient(c),
		})
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// lastStaticSegment returns the last route segment that is not a parameter
// e.g., "/api/v1/store/products/:id/reviews" → "reviews"
func lastStaticSegment(route string) string {
	parts := strings.Split(route, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" && !strings.HasPrefix(parts[i], ":") && !strings.HasPrefix(parts[i], "*") {
			return parts[i]
		}
	}
	return ""
}
