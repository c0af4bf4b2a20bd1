package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwarnma600-sudo/ecommerces/internal/cart"
	"github.com/qwarnma600-sudo/ecommerces/internal/models"
)

// Both implementations must satisfy Storage.
var (
	_ Storage = (*MySQLStore)(nil)
	_ Storage = (*MemStore)(nil)
)

func TestCreateUserInitializesCart(t *testing.T) {
	s := NewMem()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "Alice", "a@x.com", "p1")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "p1", u.PasswordHash, "password must not be stored plaintext")

	state, err := s.Cart(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.New(), state)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := NewMem()
	ctx := context.Background()

	first, err := s.CreateUser(ctx, "Alice", "a@x.com", "p1")
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, "Mallory", "a@x.com", "p2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The existing record is untouched.
	got, err := s.UserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, first.PasswordHash, got.PasswordHash)
}

func TestUserLookupMisses(t *testing.T) {
	s := NewMem()
	ctx := context.Background()

	_, err := s.UserByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.UserByID(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.Cart(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMutateCartPersists(t *testing.T) {
	s := NewMem()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "Alice", "a@x.com", "p1")
	require.NoError(t, err)

	_, err = s.MutateCart(ctx, u.ID, func(st cart.State) error {
		return st.Increment(5)
	})
	require.NoError(t, err)

	state, err := s.Cart(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, state[5])
}

func TestMutateCartErrorLeavesCartUntouched(t *testing.T) {
	s := NewMem()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "Alice", "a@x.com", "p1")
	require.NoError(t, err)

	_, err = s.MutateCart(ctx, u.ID, func(st cart.State) error {
		return st.Increment(cart.MaxSlot + 1)
	})
	assert.ErrorIs(t, err, cart.ErrSlotRange)

	state, err := s.Cart(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.New(), state)
}

func TestMutateCartConcurrentNoLostUpdates(t *testing.T) {
	s := NewMem()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "Alice", "a@x.com", "p1")
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.MutateCart(ctx, u.ID, func(st cart.State) error {
				return st.Increment(3)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err := s.Cart(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, workers, state[3])
}

func TestAddProductAndList(t *testing.T) {
	s := NewMem()
	ctx := context.Background()

	before, err := s.Products(ctx)
	require.NoError(t, err)
	require.Empty(t, before)

	p, err := s.AddProduct(ctx, models.Product{
		Name:        "Shoe",
		Image:       "http://localhost:5000/images/shoe.png",
		Category:    "footwear",
		NewPrice:    10.00,
		OldPrice:    15.00,
		Description: "desc",
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)

	after, err := s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "Shoe", after[0].Name)
	assert.Equal(t, 10.00, after[0].NewPrice)
	assert.Equal(t, 15.00, after[0].OldPrice)
	assert.Equal(t, "desc", after[0].Description)
}

func TestProductsKeepInsertionOrder(t *testing.T) {
	s := NewMem()
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := s.AddProduct(ctx, models.Product{Name: name})
		require.NoError(t, err)
	}

	got, err := s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
	assert.Equal(t, "third", got[2].Name)
}

func TestPlaceOrderDefaultsPending(t *testing.T) {
	s := NewMem()

	o, err := s.PlaceOrder(context.Background(), models.Order{
		Name:    "Bob",
		Address: "12 Main St",
		Phone:   "555-0101",
		Amount:  49.99,
	})
	require.NoError(t, err)
	assert.NotZero(t, o.ID)
	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.Equal(t, 49.99, o.Amount)
}
