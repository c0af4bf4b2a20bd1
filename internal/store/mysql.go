package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/qwarnma600-sudo/ecommerces/internal/cart"
	"github.com/qwarnma600-sudo/ecommerces/internal/logger"
	"github.com/qwarnma600-sudo/ecommerces/internal/models"
)

// MySQLStore implements Storage over the pooled connection opened in
// internal/database.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQL(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

func (s *MySQLStore) CreateUser(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.Get()

	// 1. --- Reject duplicate emails (exact match, same as the unique index) ---
	var existingID int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM users WHERE email = ?", email).Scan(&existingID)
	if err == nil {
		return models.User{}, ErrDuplicateEmail
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, err
	}

	// 2. --- Hash the password ---
	var pw models.Password
	if err := pw.Set(password); err != nil {
		return models.User{}, err
	}

	// 3. --- Build the all-zero cart blob ---
	cartData, err := cart.New().Encode()
	if err != nil {
		return models.User{}, err
	}

	// 4. --- Insert and read the row back ---
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO users (name, email, password, cartData) VALUES (?, ?, ?, ?)",
		name, email, pw.Hash, cartData)
	if err != nil {
		return models.User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}

	log.Info().Int64("userID", id).Msg("user created")
	return s.UserByID(ctx, id)
}

func (s *MySQLStore) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password, cartData, date FROM users WHERE email = ?", email))
}

func (s *MySQLStore) UserByID(ctx context.Context, id int64) (models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password, cartData, date FROM users WHERE id = ?", id))
}

func (s *MySQLStore) scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	var cartData sql.NullString // rows predating the cart column hold NULL
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &cartData, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	u.CartData = cartData.String
	return u, nil
}

func (s *MySQLStore) Cart(ctx context.Context, userID int64) (cart.State, error) {
	var cartData sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT cartData FROM users WHERE id = ?", userID).Scan(&cartData)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return cart.Decode(cartData.String)
}

// MutateCart runs the read-modify-write inside a transaction with a row
// lock on the user, so two in-flight mutations for the same user queue up
// instead of clobbering each other.
func (s *MySQLStore) MutateCart(ctx context.Context, userID int64, fn func(cart.State) error) (cart.State, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var cartData sql.NullString
	err = tx.QueryRowContext(ctx,
		"SELECT cartData FROM users WHERE id = ? FOR UPDATE", userID).Scan(&cartData)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	state, err := cart.Decode(cartData.String)
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
	if _, err := tx.ExecContext(ctx,
		"UPDATE users SET cartData = ? WHERE id = ?", encoded, userID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *MySQLStore) AddProduct(ctx context.Context, p models.Product) (models.Product, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO products (name, image, category, new_price, old_price, description) VALUES (?, ?, ?, ?, ?, ?)",
		p.Name, p.Image, p.Category, p.NewPrice, p.OldPrice, p.Description)
	if err != nil {
		return models.Product{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Product{}, err
	}

	var stored models.Product
	err = s.db.QueryRowContext(ctx,
		"SELECT id, name, image, category, new_price, old_price, description, date FROM products WHERE id = ?", id).
		Scan(&stored.ID, &stored.Name, &stored.Image, &stored.Category,
			&stored.NewPrice, &stored.OldPrice, &stored.Description, &stored.CreatedAt)
	if err != nil {
		return models.Product{}, err
	}

	log := logger.Get()
	log.Info().Int64("productID", stored.ID).Str("name", stored.Name).Msg("product added")
	return stored, nil
}

func (s *MySQLStore) Products(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, image, category, new_price, old_price, description, date FROM products")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Category,
			&p.NewPrice, &p.OldPrice, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MySQLStore) PlaceOrder(ctx context.Context, o models.Order) (models.Order, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO orders (name, address, phone, amount) VALUES (?, ?, ?, ?)",
		o.Name, o.Address, o.Phone, o.Amount)
	if err != nil {
		return models.Order{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Order{}, err
	}

	var stored models.Order
	err = s.db.QueryRowContext(ctx,
		"SELECT id, name, address, phone, amount, status, date FROM orders WHERE id = ?", id).
		Scan(&stored.ID, &stored.Name, &stored.Address, &stored.Phone,
			&stored.Amount, &stored.Status, &stored.CreatedAt)
	if err != nil {
		return models.Order{}, err
	}

	log := logger.Get()
	log.Info().Int64("orderID", stored.ID).Msg("order placed")
	return stored, nil
}
