package imagecontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/guedes-jr/store-delizandra-api/repository"
)

type imageInput struct {
	URL string `json:"url" binding:"required,url"`
}

// GetImages lists a product's gallery in display order.
// GET /admin/products/:id/images
func GetImages(products repository.ProductRepository, images repository.ImageRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := requireProduct(c, products)
		if !ok {
			return
		}

		list, err := images.ListByProduct(c.Request.Context(), productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// AddImage appends an image to the end of a product's gallery.
// POST /admin/products/:id/images
func AddImage(products repository.ProductRepository, images repository.ImageRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := requireProduct(c, products)
		if !ok {
			return
		}

		var input imageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		image, err := images.Append(c.Request.Context(), productID, input.URL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
			return
		}
		c.JSON(http.StatusCreated, image)
	}
}

// DeleteImage removes one image from a product's gallery.
// DELETE /admin/products/:id/images/:imageID
func DeleteImage(images repository.ImageRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil || productID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		imageID, err := strconv.Atoi(c.Param("imageID"))
		if err != nil || imageID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
			return
		}

		err = images.Delete(c.Request.Context(), uint(productID), uint(imageID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			}
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// requireProduct checks the product exists (active or not; gallery
// management covers the whole catalog).
func requireProduct(c *gin.Context, products repository.ProductRepository) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}

	exists, err := products.Exists(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
		return 0, false
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return 0, false
	}
	return uint(id), true
}
