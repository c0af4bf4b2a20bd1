package models

import "time"

// Order statuses. Only the default is ever written today; nothing in the
// API moves an order forward yet.
const OrderStatusPending = "Pending"

// Order is the model for the 'orders' table.
type Order struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	Phone     string    `json:"phone" db:"phone"`
	Amount    float64   `json:"amount" db:"amount"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"date" db:"date"`
}
