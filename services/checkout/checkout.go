package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/guedes-jr/store-delizandra-api/config"
	"github.com/guedes-jr/store-delizandra-api/models"
	"github.com/guedes-jr/store-delizandra-api/repository"
	"github.com/guedes-jr/store-delizandra-api/services/pricing"
	"github.com/guedes-jr/store-delizandra-api/services/whatsapp"
)

// ItemRequest is one requested cart line. Duplicate product ids across
// lines are allowed and stay separate lines; quantities are not merged.
type ItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Qty       int  `json:"qty" binding:"required"`
}

type Request struct {
	Items         []ItemRequest `json:"items" binding:"required"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
}

type Result struct {
	OrderID      uint
	OrderRef     string
	WhatsAppLink string
	Total        decimal.Decimal
}

// Service runs the checkout sequence: validate shape, resolve products,
// check stock, price and format, build the deep link, persist. All
// rejections happen before the single atomic write.
type Service struct {
	products  repository.ProductRepository
	inventory repository.InventoryRepository
	orders    repository.OrderRepository

	message      pricing.MessageBuilder
	storePhone   string
	defaultImage string
	maxQty       int
}

func NewService(
	products repository.ProductRepository,
	inventory repository.InventoryRepository,
	orders repository.OrderRepository,
	cfg config.Config,
) *Service {
	return &Service{
		products:     products,
		inventory:    inventory,
		orders:       orders,
		message:      pricing.MessageBuilder{StoreName: cfg.StoreName},
		storePhone:   cfg.WhatsAppPhone,
		defaultImage: cfg.DefaultProductImage,
		maxQty:       cfg.MaxQtyPerItem,
	}
}

// Checkout places an order for the given cart and returns the wa.me
// link plus the total. The stock check is read-only; nothing is
// reserved between validation and the write.
func (s *Service) Checkout(ctx context.Context, req Request) (*Result, error) {
	if err := s.validateShape(req); err != nil {
		return nil, err
	}

	distinct := distinctProductIDs(req.Items)
	products, err := s.products.FindActiveByIDs(ctx, distinct)
	if err != nil {
		return nil, fmt.Errorf("resolve products: %w", err)
	}
	if len(products) != len(distinct) {
		return nil, reject(CodeInvalidProduct, "product is invalid or inactive")
	}

	stock, err := s.inventory.QuantitiesByProductIDs(ctx, distinct)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	if err := validateStock(req.Items, products, stock); err != nil {
		return nil, err
	}

	lines := make([]pricing.CartLine, 0, len(req.Items))
	snapshot := make([]models.SnapshotItem, 0, len(req.Items))
	for _, item := range req.Items {
		p := products[item.ProductID]
		unit := pricing.EffectiveUnitPrice(p.Price, p.PromoPrice)
		lines = append(lines, pricing.CartLine{Name: p.Name, Qty: item.Qty, UnitPrice: unit})
		snapshot = append(snapshot, models.SnapshotItem{
			ProductID: p.ID,
			Name:      p.Name,
			Qty:       item.Qty,
			UnitPrice: unit,
			ImageURL:  s.primaryImageURL(p),
		})
	}

	total := pricing.Total(lines)
	message := s.message.Build(lines, total, req.CustomerName, req.CustomerPhone)
	link := whatsapp.BuildLink(s.storePhone, message)

	order := &models.Order{
		OrderRef:      newOrderRef(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Channel:       models.OrderChannelWhatsApp,
		Status:        models.OrderStatusCreated,
		Total:         total,
		Snapshot:      models.OrderSnapshot{Items: snapshot},
		Items:         buildOrderItems(snapshot),
		CreatedAt:     time.Now(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("record order: %w", err)
	}

	return &Result{
		OrderID:      order.ID,
		OrderRef:     order.OrderRef,
		WhatsAppLink: link,
		Total:        total,
	}, nil
}

// BuyNow is the checkout flow specialized to a single line with no
// buyer identity.
func (s *Service) BuyNow(ctx context.Context, productID uint, qty int) (*Result, error) {
	return s.Checkout(ctx, Request{
		Items: []ItemRequest{{ProductID: productID, Qty: qty}},
	})
}

func (s *Service) validateShape(req Request) error {
	if len(req.Items) == 0 {
		return reject(CodeInvalidInput, "cart is empty")
	}
	for _, item := range req.Items {
		if item.ProductID == 0 {
			return reject(CodeInvalidInput, "product_id is required")
		}
		if item.Qty <= 0 {
			return reject(CodeInvalidInput, "qty must be a positive integer")
		}
		if item.Qty > s.maxQty {
			return reject(CodeInvalidInput, "qty exceeds the per-item limit of %d", s.maxQty)
		}
	}
	return nil
}

// primaryImageURL resolves the snapshot image: first gallery image by
// position then id (the repository preloads them in that order), else
// the configured placeholder.
func (s *Service) primaryImageURL(p models.Product) string {
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return s.defaultImage
}

func buildOrderItems(snapshot []models.SnapshotItem) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(snapshot))
	for _, snap := range snapshot {
		items = append(items, models.OrderItem{
			ProductID: snap.ProductID,
			Name:      snap.Name,
			Qty:       snap.Qty,
			UnitPrice: snap.UnitPrice,
			LineTotal: snap.UnitPrice.Mul(decimal.NewFromInt(int64(snap.Qty))),
			ImageURL:  snap.ImageURL,
		})
	}
	return items
}

func distinctProductIDs(items []ItemRequest) []uint {
	seen := make(map[uint]struct{}, len(items))
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
