package store

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/freshmarket-io/marketplace-api/models"
)

// Repository tests run against a real Postgres instance because the
// invariants under test (unique indexes, ON CONFLICT upserts, row locks)
// live in the database. Configure TEST_DB_DSN or run the default local
// instance; without one the suite is skipped.
func testDSN() string {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		return dsn
	}
	return "host=localhost user=postgres password=postgres dbname=marketplace_test port=5432 sslmode=disable"
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(postgres.Open(testDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}
	require.NoError(t, Migrate(db))

	err = db.Exec("TRUNCATE users, categories, products, carts, cart_items, orders RESTART IDENTITY CASCADE").Error
	require.NoError(t, err)

	return New(db)
}

func createTestUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     "tester",
		PasswordHash: "x",
	}
	require.NoError(t, s.Users.Create(user))
	return user
}

func createTestCategory(t *testing.T, s *Store) *models.Category {
	t.Helper()
	category := &models.Category{
		Name:        fmt.Sprintf("groceries-%d", time.Now().UnixNano()),
		Description: "test category",
	}
	require.NoError(t, s.Categories.Create(category))
	return category
}

func createTestProduct(t *testing.T, s *Store, seller *models.User, stock int) *models.Product {
	t.Helper()
	category := createTestCategory(t, s)
	product := &models.Product{
		Name:            "kefir",
		Description:     "fermented milk drink",
		Composition:     "milk, cultures",
		Discount:        10,
		Quantity:        stock,
		Weight:          0.5,
		Price:           decimal.RequireFromString("89.90"),
		ManufactureDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		SellerID:        seller.ID,
		CategoryID:      category.ID,
	}
	require.NoError(t, s.Products.Create(product))
	return product
}
