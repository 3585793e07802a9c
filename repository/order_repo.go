package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/guedes-jr/store-delizandra-api/models"
)

type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create writes the order header and its items inside one transaction.
// If any item insert fails the header does not survive either.
func (r *OrderRepo) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *OrderRepo) ListRecent(ctx context.Context, limit int) ([]models.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) KPIsSince(ctx context.Context, since time.Time) (*KPIReport, error) {
	report := &KPIReport{}

	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("created_at >= ?", since).
		Count(&report.Orders).Error
	if err != nil {
		return nil, err
	}

	row := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("created_at >= ?", since).
		Select("COALESCE(SUM(total), 0)").
		Row()
	if err := row.Scan(&report.Revenue); err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ?", since).
		Select("order_items.product_id AS product_id, order_items.name AS name, SUM(order_items.qty) AS qty").
		Group("order_items.product_id, order_items.name").
		Order("qty DESC").
		Limit(5).
		Scan(&report.TopProducts).Error
	if err != nil {
		return nil, err
	}

	return report, nil
}
