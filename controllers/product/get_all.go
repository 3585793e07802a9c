package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guedes-jr/store-delizandra-api/repository"
)

// GetProducts lists active products, featured first then newest.
// Query params: q (matches name/description/sku), category (slug).
func GetProducts(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := repository.ProductFilter{
			Query:        strings.TrimSpace(c.Query("q")),
			CategorySlug: c.Query("category"),
		}

		items, err := products.ListActive(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
