package models

import "time"

// Order records a single purchase. Rows are append-only: the API exposes
// no update or delete path, and the seller is denormalized from the product
// at creation time so later product edits do not rewrite history.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	BuyerID   string    `gorm:"not null;index" json:"buyer_id"`
	Buyer     User      `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"-"`
	SellerID  string    `gorm:"not null;index" json:"seller_id"`
	Seller    User      `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
	Quantity  int       `gorm:"not null;default:1;check:quantity > 0" json:"quantity"`
}
