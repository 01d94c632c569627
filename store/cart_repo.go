package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/freshmarket-io/marketplace-api/models"
)

type CartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) *CartRepo {
	return &CartRepo{db: db}
}

// GetOrCreate returns the user's cart, creating it if absent. The insert
// rides on the unique index over user_id (ON CONFLICT DO NOTHING), so two
// concurrent first accesses still end up with a single cart row.
func (r *CartRepo) GetOrCreate(userID string) (*models.Cart, error) {
	cart := models.Cart{UserID: userID}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&cart).Error; err != nil {
		return nil, err
	}

	var found models.Cart
	if err := r.db.Where("user_id = ?", userID).First(&found).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

// GetWithItems resolves the cart and its line items with products attached.
func (r *CartRepo) GetWithItems(userID string) (*models.Cart, error) {
	cart, err := r.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if err := r.db.Preload("Items.Product").First(cart, cart.ID).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem puts quantity units of a product into the user's cart. The write
// is an atomic upsert keyed on (cart_id, product_id): if the product is
// already in the cart its quantity is incremented in place, so no sequence
// of adds can leave two rows for the same product.
func (r *CartRepo) AddItem(userID string, productID uint, quantity int) (*models.CartItem, error) {
	// A non-positive quantity must never reach the upsert: against an
	// existing row the increment would silently shrink it.
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	// Reject unknown products before touching the cart.
	var product models.Product
	if err := r.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cart, err := r.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	item := models.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	if err := r.db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			"added_at": time.Now(),
		}),
	}).Create(&item).Error; err != nil {
		return nil, err
	}

	// Re-read: on the increment path the returned struct carries the
	// summed quantity, not the requested one.
	var stored models.CartItem
	if err := r.db.Preload("Product").
		Where("cart_id = ? AND product_id = ?", cart.ID, productID).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// RemoveItem deletes a line item only when it belongs to the caller's cart.
// A foreign or missing item is the same ErrNotFound either way.
func (r *CartRepo) RemoveItem(userID string, itemID uint) error {
	res := r.db.
		Where("id = ? AND cart_id IN (?)",
			itemID,
			r.db.Model(&models.Cart{}).Select("id").Where("user_id = ?", userID),
		).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
