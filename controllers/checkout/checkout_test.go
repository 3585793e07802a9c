package checkoutcontroller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guedes-jr/store-delizandra-api/config"
	"github.com/guedes-jr/store-delizandra-api/models"
	"github.com/guedes-jr/store-delizandra-api/repository"
	"github.com/guedes-jr/store-delizandra-api/services/checkout"
)

type stubProducts struct {
	products map[uint]models.Product
}

func (s *stubProducts) ListActive(context.Context, repository.ProductFilter) ([]models.Product, error) {
	return nil, nil
}

func (s *stubProducts) GetActiveByID(_ context.Context, id uint) (*models.Product, error) {
	p := s.products[id]
	return &p, nil
}

func (s *stubProducts) FindActiveByIDs(_ context.Context, ids []uint) (map[uint]models.Product, error) {
	found := make(map[uint]models.Product)
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			found[id] = p
		}
	}
	return found, nil
}

func (s *stubProducts) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := s.products[id]
	return ok, nil
}

type stubInventory struct {
	quantities map[uint]int
}

func (s *stubInventory) QuantitiesByProductIDs(_ context.Context, ids []uint) (map[uint]int, error) {
	found := make(map[uint]int)
	for _, id := range ids {
		if qty, ok := s.quantities[id]; ok {
			found[id] = qty
		}
	}
	return found, nil
}

type stubOrders struct {
	created int
}

func (s *stubOrders) Create(context.Context, *models.Order) error {
	s.created++
	return nil
}

func (s *stubOrders) ListRecent(context.Context, int) ([]models.Order, error) {
	return nil, nil
}

func (s *stubOrders) KPIsSince(context.Context, time.Time) (*repository.KPIReport, error) {
	return &repository.KPIReport{}, nil
}

func newTestRouter(stock map[uint]int) (*gin.Engine, *stubOrders) {
	gin.SetMode(gin.TestMode)

	price := decimal.RequireFromString("10.00")
	products := &stubProducts{products: map[uint]models.Product{
		1: {ID: 1, Name: "Widget", Price: price, IsActive: true},
	}}
	orders := &stubOrders{}
	svc := checkout.NewService(products, &stubInventory{quantities: stock}, orders, config.Config{
		StoreName:     "My Store",
		WhatsAppPhone: "5511999998888",
		MaxQtyPerItem: 10,
	})

	r := gin.New()
	r.POST("/api/checkout/whatsapp", Checkout(svc))
	r.POST("/api/buynow/whatsapp", BuyNow(svc))
	return r, orders
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutHandler_Created(t *testing.T) {
	r, orders := newTestRouter(map[uint]int{1: 5})

	w := postJSON(r, "/api/checkout/whatsapp",
		`{"items":[{"product_id":1,"qty":2}],"customer_name":"Ana","customer_phone":"123"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "20.00", body["total"])
	assert.Contains(t, body["whatsapp_link"], "https://wa.me/5511999998888?text=")
	assert.Equal(t, 1, orders.created)
}

func TestCheckoutHandler_MalformedJSON(t *testing.T) {
	r, orders := newTestRouter(map[uint]int{1: 5})

	w := postJSON(r, "/api/checkout/whatsapp", `{"items":`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_input", body["code"])
	assert.Equal(t, 0, orders.created)
}

func TestCheckoutHandler_OutOfStock(t *testing.T) {
	r, orders := newTestRouter(map[uint]int{1: 3})

	w := postJSON(r, "/api/checkout/whatsapp", `{"items":[{"product_id":1,"qty":5}]}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "out_of_stock", body["code"])
	assert.Contains(t, body["detail"], "Widget")
	assert.Equal(t, 0, orders.created)
}

func TestCheckoutHandler_InvalidProduct(t *testing.T) {
	r, orders := newTestRouter(map[uint]int{1: 5})

	w := postJSON(r, "/api/checkout/whatsapp", `{"items":[{"product_id":999,"qty":1}]}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_product", body["code"])
	assert.Equal(t, 0, orders.created)
}

func TestBuyNowHandler_Created(t *testing.T) {
	r, orders := newTestRouter(map[uint]int{1: 5})

	w := postJSON(r, "/api/buynow/whatsapp", `{"product_id":1,"qty":1}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "10.00", body["total"])
	assert.Equal(t, 1, orders.created)
}

func TestBuyNowHandler_MissingQty(t *testing.T) {
	r, orders := newTestRouter(map[uint]int{1: 5})

	w := postJSON(r, "/api/buynow/whatsapp", `{"product_id":1}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, orders.created)
}
