// Package apierr maps business failures to the wire format: every error
// response carries a machine-readable kind next to the human message.
package apierr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/freshmarket-io/marketplace-api/store"
)

const (
	KindValidation        = "validation_error"
	KindNotAuthenticated  = "not_authenticated"
	KindNotFound          = "not_found"
	KindInsufficientStock = "insufficient_stock"
	KindInternal          = "internal_error"
)

func JSON(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{"kind": kind, "error": message})
}

// Store translates a repository error. Known sentinels become recoverable
// 4xx responses; anything else is a store failure, logged and returned as
// an opaque 500.
func Store(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		JSON(c, http.StatusNotFound, KindNotFound, notFoundMsg)
	case errors.Is(err, store.ErrInsufficientStock):
		JSON(c, http.StatusBadRequest, KindInsufficientStock, "insufficient stock")
	case errors.Is(err, store.ErrEmailTaken):
		JSON(c, http.StatusBadRequest, KindValidation, "email already registered")
	case errors.Is(err, store.ErrInvalidQuantity):
		JSON(c, http.StatusBadRequest, KindValidation, "quantity must be positive")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("store failure")
		JSON(c, http.StatusInternalServerError, KindInternal, "internal error")
	}
}
