package reviewcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/guedes-jr/store-delizandra-api/models"
	"github.com/guedes-jr/store-delizandra-api/repository"
)

type reviewInput struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// GetReviews lists approved reviews for a product together with the
// average rating and count. GET /api/products/:id/reviews
func GetReviews(products repository.ProductRepository, reviews repository.ReviewRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseProductID(c)
		if !ok {
			return
		}
		if !requireActiveProduct(c, products, productID) {
			return
		}

		list, err := reviews.ListApproved(c.Request.Context(), productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		average := 0.0
		if len(list) > 0 {
			sum := 0
			for _, r := range list {
				sum += r.Rating
			}
			average = float64(sum) / float64(len(list))
		}

		c.JSON(http.StatusOK, gin.H{
			"results": list,
			"average": average,
			"count":   len(list),
		})
	}
}

// CreateReview adds a review for an active product.
// POST /api/products/:id/reviews
func CreateReview(products repository.ProductRepository, reviews repository.ReviewRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseProductID(c)
		if !ok {
			return
		}
		if !requireActiveProduct(c, products, productID) {
			return
		}

		var input reviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review := &models.ProductReview{
			ProductID:  productID,
			Name:       input.Name,
			Rating:     input.Rating,
			Comment:    input.Comment,
			IsApproved: true,
		}
		if err := reviews.Create(c.Request.Context(), review); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

func parseProductID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

func requireActiveProduct(c *gin.Context, products repository.ProductRepository, id uint) bool {
	_, err := products.GetActiveByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
		}
		return false
	}
	return true
}
