package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Slug     string `gorm:"uniqueIndex;not null" json:"slug"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
	Position uint   `gorm:"default:0" json:"position"`
}

type Product struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  uint     `gorm:"not null;index" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"category"`
	Name        string   `gorm:"not null" json:"name"`
	Slug        string   `gorm:"uniqueIndex;not null" json:"slug"`
	Description string   `json:"description"`
	SKU         string   `gorm:"uniqueIndex;not null" json:"sku"`
	// Price is the base price; PromoPrice, when set, takes precedence.
	Price      decimal.Decimal  `gorm:"not null;type:decimal(10,2)" json:"price"`
	PromoPrice *decimal.Decimal `gorm:"type:decimal(10,2)" json:"promo_price"`
	IsActive   bool             `gorm:"default:true" json:"is_active"`
	Featured   bool             `gorm:"default:false" json:"featured"`
	Images     []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt  time.Time        `json:"created_at"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
	Position  uint   `gorm:"default:0" json:"position"`
}
