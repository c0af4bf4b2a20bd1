package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qwarnma600-sudo/ecommerces/internal/cart"
	"github.com/qwarnma600-sudo/ecommerces/internal/logger"
	"github.com/qwarnma600-sudo/ecommerces/internal/store"
)

//
// --- Cart Handlers (Login Required) ---
//
// All three act on the user the auth middleware verified, never on a
// userId from the request body.
//

// CartItemInput defines the JSON for /addtocart and /removefromcart.
// itemId 0 is a valid slot, so the pointer distinguishes "slot zero"
// from "field missing".
type CartItemInput struct {
	ItemID *int `json:"itemId" binding:"required"`
}

func (h *Handlers) mutateCart(c *gin.Context, fn func(cart.State, int) error, okMessage string) {
	// 1. --- Get the verified user ---
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	// 2. --- Bind & Validate JSON ---
	var input CartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	// 3. --- Apply the mutation atomically ---
	_, err := h.Store.MutateCart(c.Request.Context(), userID, func(s cart.State) error {
		return fn(s, *input.ItemID)
	})
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrSlotRange):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, store.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User not found"})
		default:
			zl := logger.Get()
			zl.Error().Err(err).Int64("userID", userID).Msg("cart mutation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Cart error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": okMessage})
}

// AddToCart is the handler for POST /addtocart.
func (h *Handlers) AddToCart(c *gin.Context) {
	h.mutateCart(c, cart.State.Increment, "Added Successfully")
}

// RemoveFromCart is the handler for POST /removefromcart. Removing from
// an empty slot succeeds and leaves the slot at zero.
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	h.mutateCart(c, cart.State.Decrement, "Removed Successfully")
}

// GetCart is the handler for POST /getcart. The whole mapping comes back
// in one piece; a missing user gets an empty object, as the storefront
// expects.
func (h *Handlers) GetCart(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	state, err := h.Store.Cart(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		zl := logger.Get()
		zl.Error().Err(err).Int64("userID", userID).Msg("cart read failed")
		c.JSON(http.StatusInternalServerError, gin.H{})
		return
	}

	c.JSON(http.StatusOK, state)
}
