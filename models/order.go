package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderChannelWhatsApp = "whatsapp"
	OrderStatusCreated   = "created"
)

// Order is written exactly once per successful checkout and never
// mutated afterwards. Total always equals the sum of item line totals.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderRef      string          `gorm:"uniqueIndex;not null" json:"order_ref"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Channel       string          `gorm:"type:VARCHAR(32);default:'whatsapp'" json:"channel"`
	Status        string          `gorm:"type:VARCHAR(32);default:'created'" json:"status"`
	Total         decimal.Decimal `gorm:"not null;type:decimal(12,2)" json:"total"`
	// Snapshot duplicates the item rows as a structured blob for audit.
	Snapshot  OrderSnapshot `gorm:"serializer:json" json:"snapshot"`
	Items     []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time     `json:"created_at"`
}

// OrderItem captures the product fields as they were at order time, so
// later catalog edits cannot alter historical orders.
type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"index"`
	ProductID uint
	Name      string
	Qty       int             `gorm:"not null;check:qty > 0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)"`
	LineTotal decimal.Decimal `gorm:"type:decimal(12,2)"`
	ImageURL  string
}

type OrderSnapshot struct {
	Items []SnapshotItem `json:"items"`
}

type SnapshotItem struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  string          `json:"image_url"`
}
