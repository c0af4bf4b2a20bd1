package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qwarnma600-sudo/ecommerces/internal/logger"
	"github.com/qwarnma600-sudo/ecommerces/internal/models"
)

// AddProductInput defines the JSON for POST /addproduct. Only the name is
// required; the catalog accepts sparse rows just like its schema does.
type AddProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	NewPrice    float64 `json:"new_price"`
	OldPrice    float64 `json:"old_price"`
	Description string  `json:"description"`
}

// AddProduct is the handler for POST /addproduct.
func (h *Handlers) AddProduct(c *gin.Context) {
	var input AddProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	_, err := h.Store.AddProduct(c.Request.Context(), models.Product{
		Name:        input.Name,
		Image:       input.Image,
		Category:    input.Category,
		NewPrice:    input.NewPrice,
		OldPrice:    input.OldPrice,
		Description: input.Description,
	})
	if err != nil {
		zl := logger.Get()
		zl.Error().Err(err).Msg("product insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "name": input.Name})
}

// AllProducts is the handler for GET /allproducts. Returns every row in
// insertion order, no paging.
func (h *Handlers) AllProducts(c *gin.Context) {
	products, err := h.Store.Products(c.Request.Context())
	if err != nil {
		zl := logger.Get()
		zl.Error().Err(err).Msg("product listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}
