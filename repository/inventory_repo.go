package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/guedes-jr/store-delizandra-api/models"
)

type InventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

// QuantitiesByProductIDs is a plain read; no row is locked or reserved,
// so two concurrent checkouts can both see the same stock.
func (r *InventoryRepo) QuantitiesByProductIDs(ctx context.Context, ids []uint) (map[uint]int, error) {
	var rows []models.Inventory
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	quantities := make(map[uint]int, len(rows))
	for _, inv := range rows {
		quantities[inv.ProductID] = inv.Quantity
	}
	return quantities, nil
}
