package userControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshmarket-io/marketplace-api/apierr"
	"github.com/freshmarket-io/marketplace-api/auth"
	"github.com/freshmarket-io/marketplace-api/middleware"
	"github.com/freshmarket-io/marketplace-api/models"
	"github.com/freshmarket-io/marketplace-api/store"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email,max=50"`
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserInput struct {
	Username *string `json:"username"`
}

// POST /register
func Register(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid input: "+err.Error())
			return
		}

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			apierr.JSON(c, http.StatusInternalServerError, apierr.KindInternal, "Failed to register user")
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        strings.ToLower(strings.TrimSpace(input.Email)),
			Username:     strings.TrimSpace(input.Username),
			PasswordHash: hash,
		}
		if err := s.Users.Create(&user); err != nil {
			apierr.Store(c, err, "User not found")
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

// POST /login
func Login(s *store.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid input: "+err.Error())
			return
		}

		user, err := s.Users.GetByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
		if err != nil || !auth.CheckPassword(user.PasswordHash, input.Password) {
			// Same response for unknown email and wrong password.
			apierr.JSON(c, http.StatusUnauthorized, apierr.KindNotAuthenticated, "Invalid email or password")
			return
		}

		token, err := auth.IssueToken(jwtSecret, user.ID, user.Email)
		if err != nil {
			apierr.JSON(c, http.StatusInternalServerError, apierr.KindInternal, "Failed to issue token")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// GET /user
func GetUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			apierr.JSON(c, http.StatusUnauthorized, apierr.KindNotAuthenticated, "Unauthorized")
			return
		}

		user, err := s.Users.GetByID(userID)
		if err != nil {
			apierr.Store(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user
func UpdateUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			apierr.JSON(c, http.StatusUnauthorized, apierr.KindNotAuthenticated, "Unauthorized")
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindValidation, "Invalid input: "+err.Error())
			return
		}

		updates := make(map[string]interface{})
		if input.Username != nil {
			updates["username"] = strings.TrimSpace(*input.Username)
		}

		user, err := s.Users.UpdateProfile(userID, updates)
		if err != nil {
			apierr.Store(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
