package dashboardcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guedes-jr/store-delizandra-api/repository"
)

// GetKPIs reports order count, revenue and the five best-selling
// products over the last seven days. GET /admin/dashboard/kpis
func GetKPIs(orders repository.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		since := time.Now().Add(-7 * 24 * time.Hour)

		report, err := orders.KPIsSince(c.Request.Context(), since)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute KPIs"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"orders_last_7_days":  report.Orders,
			"revenue_last_7_days": report.Revenue.StringFixed(2),
			"top_products":        report.TopProducts,
		})
	}
}
