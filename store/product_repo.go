package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/freshmarket-io/marketplace-api/models"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepo) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) List() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// PartialUpdate applies the given column updates to a product owned by
// sellerID. A product owned by someone else is reported as not found, the
// same as a missing one, so sellers cannot probe each other's catalog.
func (r *ProductRepo) PartialUpdate(id uint, sellerID string, updates map[string]interface{}) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ? AND seller_id = ?", id, sellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(id)
}
