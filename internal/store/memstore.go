package store

import (
	"context"
	"sync"
	"time"

	"github.com/qwarnma600-sudo/ecommerces/internal/cart"
	"github.com/qwarnma600-sudo/ecommerces/internal/models"
)

// MemStore is the in-memory Storage used by tests. The mutex gives it the
// same per-user cart serialization the MySQL store gets from row locks.
type MemStore struct {
	mu sync.Mutex

	users    map[int64]models.User
	products []models.Product
	orders   []models.Order

	nextUserID    int64
	nextProductID int64
	nextOrderID   int64
}

func NewMem() *MemStore {
	return &MemStore{
		users:         make(map[int64]models.User),
		nextUserID:    1,
		nextProductID: 1,
		nextOrderID:   1,
	}
}

func (s *MemStore) CreateUser(_ context.Context, name, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	var pw models.Password
	if err := pw.Set(password); err != nil {
		return models.User{}, err
	}
	cartData, err := cart.New().Encode()
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:           s.nextUserID,
		Name:         name,
		Email:        email,
		PasswordHash: pw.Hash,
		CartData:     cartData,
		CreatedAt:    time.Now(),
	}
	s.nextUserID++
	s.users[u.ID] = u
	return u, nil
}

func (s *MemStore) UserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *MemStore) UserByID(_ context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *MemStore) Cart(_ context.Context, userID int64) (cart.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cart.Decode(u.CartData)
}

func (s *MemStore) MutateCart(_ context.Context, userID int64, fn func(cart.State) error) (cart.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	state, err := cart.Decode(u.CartData)
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		return nil, err
	}
	encoded, err := state.Encode()
	if err != nil {
		return nil, err
	}
	u.CartData = encoded
	s.users[userID] = u
	return state, nil
}

func (s *MemStore) AddProduct(_ context.Context, p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProductID
	s.nextProductID++
	p.CreatedAt = time.Now()
	s.products = append(s.products, p)
	return p, nil
}

func (s *MemStore) Products(_ context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemStore) PlaceOrder(_ context.Context, o models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.nextOrderID
	s.nextOrderID++
	o.Status = models.OrderStatusPending
	o.CreatedAt = time.Now()
	s.orders = append(s.orders, o)
	return o, nil
}
