package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/freshmarket-io/marketplace-api/models"
)

// Business-rule failures handlers are expected to recover from. Anything
// else coming out of a repo is a store failure and maps to a 500.
var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)

// Store bundles the per-aggregate repositories over one shared connection.
type Store struct {
	DB         *gorm.DB
	Users      *UserRepo
	Categories *CategoryRepo
	Products   *ProductRepo
	Carts      *CartRepo
	Orders     *OrderRepo
}

func New(db *gorm.DB) *Store {
	return &Store{
		DB:         db,
		Users:      NewUserRepo(db),
		Categories: NewCategoryRepo(db),
		Products:   NewProductRepo(db),
		Carts:      NewCartRepo(db),
		Orders:     NewOrderRepo(db),
	}
}

// Open connects to Postgres and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return New(db), nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
