package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qwarnma600-sudo/ecommerces/internal/logger"
	"github.com/qwarnma600-sudo/ecommerces/internal/models"
)

// PlaceOrderInput defines the JSON for POST /placeorder. No format checks
// on phone, address or amount sign: the contract accepts whatever the
// storefront collected.
type PlaceOrderInput struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Amount  float64 `json:"amount"`
}

// PlaceOrder is the handler for POST /placeorder. Orders start Pending;
// nothing in the API moves them past that yet.
func (h *Handlers) PlaceOrder(c *gin.Context) {
	var input PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	_, err := h.Store.PlaceOrder(c.Request.Context(), models.Order{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Amount:  input.Amount,
	})
	if err != nil {
		zl := logger.Get()
		zl.Error().Err(err).Msg("order insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error while placing order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order Placed Successfully"})
}
