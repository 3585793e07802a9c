package models

// Inventory holds the quantity on hand for one product. The checkout
// flow only reads it; fulfillment tooling writes it.
type Inventory struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint `gorm:"uniqueIndex;not null" json:"product_id"`
	Quantity  int  `gorm:"not null;default:0" json:"quantity"`
}
