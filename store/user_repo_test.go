package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/freshmarket-io/marketplace-api/models"
)

func TestCreateUserAlsoCreatesCart(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "newuser@example.com")

	var cart models.Cart
	require.NoError(t, s.DB.Where("user_id = ?", user.ID).First(&cart).Error)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	createTestUser(t, s, "taken@example.com")

	dup := &models.User{
		ID:           uuid.NewString(),
		Email:        "taken@example.com",
		Username:     "other",
		PasswordHash: "x",
	}
	err := s.Users.Create(dup)
	require.ErrorIs(t, err, ErrEmailTaken)

	// The failed registration must not leave an orphan cart behind.
	var count int64
	require.NoError(t, s.DB.Model(&models.Cart{}).Where("user_id = ?", dup.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "profile@example.com")

	updated, err := s.Users.UpdateProfile(user.ID, map[string]interface{}{"username": "renamed"})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Username)
	require.Equal(t, user.Email, updated.Email)
}
