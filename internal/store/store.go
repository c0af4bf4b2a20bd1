// Package store owns persistence: user accounts with their carts, the
// product catalog and the order log. A single Storage interface fronts two
// implementations, MySQL for the real server and an in-memory store for
// tests.
package store

import (
	"context"
	"errors"

	"github.com/qwarnma600-sudo/ecommerces/internal/cart"
	"github.com/qwarnma600-sudo/ecommerces/internal/models"
)

var (
	ErrDuplicateEmail = errors.New("store: email already registered")
	ErrUserNotFound   = errors.New("store: user not found")
)

// Storage is everything the handlers need from persistence.
type Storage interface {
	// CreateUser registers a new account with a freshly zeroed cart.
	// The password is stored as a bcrypt hash, never plaintext.
	CreateUser(ctx context.Context, name, email, password string) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id int64) (models.User, error)

	// Cart reads a user's full cart state.
	Cart(ctx context.Context, userID int64) (cart.State, error)
	// MutateCart applies fn to the user's cart and persists the result as
	// one atomic read-modify-write. Two concurrent mutations for the same
	// user are serialized; neither update is lost. If fn returns an error
	// the cart is left untouched and the error comes back unwrapped.
	MutateCart(ctx context.Context, userID int64, fn func(cart.State) error) (cart.State, error)

	AddProduct(ctx context.Context, p models.Product) (models.Product, error)
	Products(ctx context.Context) ([]models.Product, error)

	// PlaceOrder records an order with status Pending. Field contents are
	// accepted as given.
	PlaceOrder(ctx context.Context, o models.Order) (models.Order, error)
}
