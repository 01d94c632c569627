package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/freshmarket-io/marketplace-api/models"
)

type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create converts a purchase intent into a durable order. The stock check,
// the stock decrement and the order insert run in one transaction with the
// product row locked (SELECT ... FOR UPDATE), so of two concurrent orders
// competing for the last units exactly one commits and the other observes
// ErrInsufficientStock. On any failure stock is left untouched.
func (r *OrderRepo) Create(buyerID string, productID uint, quantity int) (*models.Order, error) {
	// Guarded here as well as at the HTTP boundary: a non-positive
	// quantity would pass the stock check and grow stock on decrement.
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var order models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if product.Quantity < quantity {
			return ErrInsufficientStock
		}

		if err := tx.Model(&product).
			Update("quantity", gorm.Expr("quantity - ?", quantity)).Error; err != nil {
			return err
		}

		order = models.Order{
			BuyerID:   buyerID,
			SellerID:  product.SellerID,
			ProductID: product.ID,
			Quantity:  quantity,
		}
		return tx.Omit(clause.Associations).Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	if err := r.db.Preload("Product").First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser returns the orders the caller took part in, as buyer or as
// seller, newest first. Orders between unrelated users are never exposed.
func (r *OrderRepo) ListByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.
		Preload("Product").
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
