package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qwarnma600-sudo/ecommerces/internal/logger"
	"github.com/qwarnma600-sudo/ecommerces/internal/models"
	"github.com/qwarnma600-sudo/ecommerces/internal/store"
)

//
// --- Signup / Login ---
//

// SignupInput is the JSON the storefront sends to /signup. Separate from
// models.User so a client can never smuggle in an id or a hash.
type SignupInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup is the handler for POST /signup.
func (h *Handlers) Signup(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}

	// 2. --- Create the user (store hashes the password and zeroes the cart) ---
	user, err := h.Store.CreateUser(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Existing user found with this email"})
			return
		}
		zl := logger.Get()
		zl.Error().Err(err).Msg("signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Signup Error"})
		return
	}

	// 3. --- Mint the token ---
	token, err := h.Auth.Token(user.ID)
	if err != nil {
		zl := logger.Get()
		zl.Error().Err(err).Msg("token mint failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Signup Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// LoginInput is the JSON for POST /login.
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /login. The response carries userId for
// the storefront's benefit; the token is what protected routes trust.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
		return
	}

	user, err := h.Store.UserByEmail(c.Request.Context(), input.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Wrong Email Id"})
			return
		}
		zl := logger.Get()
		zl.Error().Err(err).Msg("login lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Login Error"})
		return
	}

	pw := models.Password{Hash: user.PasswordHash}
	match, err := pw.Matches(input.Password)
	if err != nil {
		zl := logger.Get()
		zl.Error().Err(err).Msg("password compare failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Login Error"})
		return
	}
	if !match {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "Wrong Password"})
		return
	}

	token, err := h.Auth.Token(user.ID)
	if err != nil {
		zl := logger.Get()
		zl.Error().Err(err).Msg("token mint failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": "Login Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "userId": user.ID})
}
