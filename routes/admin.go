package routes

import (
	"github.com/gin-gonic/gin"

	dashboardcontroller "github.com/guedes-jr/store-delizandra-api/controllers/dashboard"
	imagecontroller "github.com/guedes-jr/store-delizandra-api/controllers/image"
	ordercontroller "github.com/guedes-jr/store-delizandra-api/controllers/order"
	"github.com/guedes-jr/store-delizandra-api/middleware"
)

// SetupAdminRoutes registers the staff endpoints. Requires the
// X-API-KEY middleware.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey(deps.Config.AdminAPIKey))
	{
		// ──────────────── Product galleries ────────────────
		admin.GET("/products/:id/images", imagecontroller.GetImages(deps.Products, deps.Images))
		admin.POST("/products/:id/images", imagecontroller.AddImage(deps.Products, deps.Images))
		admin.DELETE("/products/:id/images/:imageID", imagecontroller.DeleteImage(deps.Images))

		// ──────────────── Reporting ────────────────
		admin.GET("/dashboard/kpis", dashboardcontroller.GetKPIs(deps.Orders))
		admin.GET("/orders/export", ordercontroller.ExportOrdersToExcel(deps.Orders))
	}
}
