package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/guedes-jr/store-delizandra-api/config"
	"github.com/guedes-jr/store-delizandra-api/repository"
	"github.com/guedes-jr/store-delizandra-api/services/checkout"
)

// Deps bundles everything the route handlers need. Built once in main.
type Deps struct {
	Config    config.Config
	Products  repository.ProductRepository
	Inventory repository.InventoryRepository
	Orders    repository.OrderRepository
	Reviews   repository.ReviewRepository
	Images    repository.ImageRepository
	Checkout  *checkout.Service
}

// SetupRoutes is the single entry point that wires up the public
// catalog/checkout endpoints and the API-key-protected admin endpoints.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupCatalogRoutes(r, deps)

	SetupCheckoutRoutes(r, deps)

	SetupAdminRoutes(r, deps)
}
