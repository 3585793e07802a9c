package routes

import (
	"github.com/gin-gonic/gin"

	checkoutcontroller "github.com/guedes-jr/store-delizandra-api/controllers/checkout"
)

// SetupCheckoutRoutes registers the order-placement endpoints.
func SetupCheckoutRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api")
	{
		// Validate a cart, record the order, return the wa.me link
		api.POST("/checkout/whatsapp", checkoutcontroller.Checkout(deps.Checkout))

		// Single-item variant with no buyer identity
		api.POST("/buynow/whatsapp", checkoutcontroller.BuyNow(deps.Checkout))
	}
}
