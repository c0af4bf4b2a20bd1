package handlers

import (
	"github.com/qwarnma600-sudo/ecommerces/internal/auth"
	"github.com/qwarnma600-sudo/ecommerces/internal/config"
	"github.com/qwarnma600-sudo/ecommerces/internal/store"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store store.Storage
	Auth  *auth.Issuer
	Cfg   config.Config
}
