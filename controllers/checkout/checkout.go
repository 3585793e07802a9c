package checkoutcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guedes-jr/store-delizandra-api/services/checkout"
)

type BuyNowRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Qty       int  `json:"qty" binding:"required"`
}

type checkoutResponse struct {
	WhatsAppLink string `json:"whatsapp_link"`
	Total        string `json:"total"`
}

// Checkout validates a cart, places the order and returns the wa.me
// link plus the total. POST /api/checkout/whatsapp
func Checkout(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": checkout.CodeInvalidInput, "errors": err.Error()})
			return
		}

		result, err := svc.Checkout(c.Request.Context(), req)
		if err != nil {
			respondCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusCreated, checkoutResponse{
			WhatsAppLink: result.WhatsAppLink,
			Total:        result.Total.StringFixed(2),
		})
	}
}

// BuyNow is the single-item variant. POST /api/buynow/whatsapp
func BuyNow(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BuyNowRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": checkout.CodeInvalidInput, "errors": err.Error()})
			return
		}

		result, err := svc.BuyNow(c.Request.Context(), req.ProductID, req.Qty)
		if err != nil {
			respondCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusCreated, checkoutResponse{
			WhatsAppLink: result.WhatsAppLink,
			Total:        result.Total.StringFixed(2),
		})
	}
}

// respondCheckoutError maps business rejections to 400 with their code;
// everything else is a system fault and stays generic.
func respondCheckoutError(c *gin.Context, err error) {
	var rej *checkout.RejectionError
	if errors.As(err, &rej) {
		c.JSON(http.StatusBadRequest, gin.H{"code": rej.Code, "detail": rej.Detail})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
}
