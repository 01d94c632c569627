package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freshmarket-io/marketplace-api/models"
)

func TestGetOrCreateReturnsSameCart(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "cart1@example.com")

	first, err := s.Carts.GetOrCreate(user.ID)
	require.NoError(t, err)
	second, err := s.Carts.GetOrCreate(user.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, s.DB.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestGetOrCreateConcurrentFirstAccess(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "cart2@example.com")
	// Drop the cart created at registration to simulate a first access race.
	require.NoError(t, s.DB.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error)

	var wg sync.WaitGroup
	ids := make([]uint, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cart, err := s.Carts.GetOrCreate(user.ID)
			if err == nil {
				ids[i] = cart.ID
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.Equal(t, ids[0], ids[1])

	var count int64
	require.NoError(t, s.DB.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestRegisteredUserStartsWithEmptyCart(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "fresh@example.com")

	cart, err := s.Carts.GetWithItems(user.ID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestAddItemIncrementsExistingRow(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "add@example.com")
	product := createTestProduct(t, s, user, 50)

	item, err := s.Carts.AddItem(user.ID, product.ID, 2)
	require.NoError(t, err)
	require.Equal(t, 2, item.Quantity)

	item, err = s.Carts.AddItem(user.ID, product.ID, 3)
	require.NoError(t, err)
	require.Equal(t, 5, item.Quantity)

	var count int64
	require.NoError(t, s.DB.Model(&models.CartItem{}).
		Where("product_id = ?", product.ID).Count(&count).Error)
	require.EqualValues(t, 1, count, "repeated adds must not create duplicate rows")
}

func TestAddItemConcurrentAddsSumQuantities(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "race@example.com")
	product := createTestProduct(t, s, user, 50)

	quantities := []int{2, 3, 4}
	var wg sync.WaitGroup
	errs := make([]error, len(quantities))
	for i, q := range quantities {
		wg.Add(1)
		go func(i, q int) {
			defer wg.Done()
			_, errs[i] = s.Carts.AddItem(user.ID, product.ID, q)
		}(i, q)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	var items []models.CartItem
	require.NoError(t, s.DB.Where("product_id = ?", product.ID).Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, 9, items[0].Quantity)
}

func TestAddItemNonPositiveQuantity(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "nonpos@example.com")
	product := createTestProduct(t, s, user, 50)

	item, err := s.Carts.AddItem(user.ID, product.ID, 5)
	require.NoError(t, err)
	require.Equal(t, 5, item.Quantity)

	for _, q := range []int{0, -3} {
		_, err := s.Carts.AddItem(user.ID, product.ID, q)
		require.ErrorIs(t, err, ErrInvalidQuantity, "quantity %d", q)
	}

	// A rejected add must not shrink the existing line item.
	cart, err := s.Carts.GetWithItems(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "missing@example.com")

	_, err := s.Carts.AddItem(user.ID, 424242, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveItem(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "remove@example.com")
	product := createTestProduct(t, s, user, 50)

	item, err := s.Carts.AddItem(user.ID, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, s.Carts.RemoveItem(user.ID, item.ID))

	cart, err := s.Carts.GetWithItems(user.ID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestRemoveItemForeignCart(t *testing.T) {
	s := newTestStore(t)
	owner := createTestUser(t, s, "owner@example.com")
	intruder := createTestUser(t, s, "intruder@example.com")
	product := createTestProduct(t, s, owner, 50)

	item, err := s.Carts.AddItem(owner.ID, product.ID, 1)
	require.NoError(t, err)

	err = s.Carts.RemoveItem(intruder.ID, item.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// The owner's item is untouched.
	cart, err := s.Carts.GetWithItems(owner.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
}
