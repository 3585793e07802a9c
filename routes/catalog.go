package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/guedes-jr/store-delizandra-api/controllers/product"
	reviewcontroller "github.com/guedes-jr/store-delizandra-api/controllers/review"
)

// SetupCatalogRoutes registers the public "/api/products" endpoints.
func SetupCatalogRoutes(r *gin.Engine, deps Deps) {
	products := r.Group("/api/products")
	{
		// ──────────────── Browse Products ────────────────
		products.GET("/", productcontroller.GetProducts(deps.Products))
		products.GET("/:id", productcontroller.GetProductByID(deps.Products))

		// ──────────────── Reviews ────────────────
		products.GET("/:id/reviews", reviewcontroller.GetReviews(deps.Products, deps.Reviews))
		products.POST("/:id/reviews", reviewcontroller.CreateReview(deps.Products, deps.Reviews))
	}
}
