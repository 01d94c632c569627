package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"size:50;not null" json:"name"`
	Description     string          `gorm:"size:800" json:"description"`
	Composition     string          `gorm:"size:400" json:"composition"`
	Discount        int             `gorm:"default:0;check:discount >= 0 AND discount <= 100" json:"discount"`
	Quantity        int             `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"` // units in stock
	Weight          float64         `json:"weight"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	ManufactureDate time.Time       `gorm:"type:date" json:"manufacture_date"`
	ExpiryDate      time.Time       `gorm:"type:date" json:"expiry_date"`
	SellerID        string          `gorm:"not null;index" json:"seller_id"`
	Seller          User            `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"-"`
	CategoryID      uint            `gorm:"not null;index" json:"category_id"`
	Category        Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	EffectivePrice  decimal.Decimal `gorm:"-" json:"effective_price"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// DiscountedPrice is price * (100 - discount) / 100, rounded to cents.
func (p *Product) DiscountedPrice() decimal.Decimal {
	return p.Price.
		Mul(decimal.NewFromInt(int64(100 - p.Discount))).
		Div(decimal.NewFromInt(100)).
		Round(2)
}

func (p *Product) AfterFind(*gorm.DB) error {
	p.EffectivePrice = p.DiscountedPrice()
	return nil
}

func (p *Product) AfterSave(*gorm.DB) error {
	p.EffectivePrice = p.DiscountedPrice()
	return nil
}
