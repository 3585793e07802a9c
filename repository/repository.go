package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guedes-jr/store-delizandra-api/models"
)

// ProductFilter narrows the public catalog listing.
type ProductFilter struct {
	Query        string
	CategorySlug string
}

type ProductRepository interface {
	// ListActive returns active products, featured first then newest,
	// with category and position-ordered images preloaded.
	ListActive(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetActiveByID(ctx context.Context, id uint) (*models.Product, error)
	// FindActiveByIDs resolves the given ids among active products
	// only; missing or inactive ids are simply absent from the map.
	FindActiveByIDs(ctx context.Context, ids []uint) (map[uint]models.Product, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type InventoryRepository interface {
	// QuantitiesByProductIDs returns quantity on hand keyed by product
	// id; products without an inventory row are absent from the map.
	QuantitiesByProductIDs(ctx context.Context, ids []uint) (map[uint]int, error)
}

type OrderRepository interface {
	// Create persists the order header and all of its items as one
	// transaction: either every row exists afterwards or none do.
	Create(ctx context.Context, order *models.Order) error
	// ListRecent returns orders with items, newest first. limit <= 0
	// means no limit.
	ListRecent(ctx context.Context, limit int) ([]models.Order, error)
	KPIsSince(ctx context.Context, since time.Time) (*KPIReport, error)
}

type ReviewRepository interface {
	ListApproved(ctx context.Context, productID uint) ([]models.ProductReview, error)
	Create(ctx context.Context, review *models.ProductReview) error
}

type ImageRepository interface {
	ListByProduct(ctx context.Context, productID uint) ([]models.ProductImage, error)
	// Append adds an image at the end of the product's gallery.
	Append(ctx context.Context, productID uint, url string) (*models.ProductImage, error)
	Delete(ctx context.Context, productID, imageID uint) error
}

type TopProduct struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
}

type KPIReport struct {
	Orders      int64           `json:"orders"`
	Revenue     decimal.Decimal `json:"revenue"`
	TopProducts []TopProduct    `json:"top_products"`
}
