package models

import "time"

// Product is the model for the 'products' table. JSON keys mirror the
// column names because /allproducts returns rows to the storefront as-is.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Image       string    `json:"image" db:"image"`
	Category    string    `json:"category" db:"category"`
	NewPrice    float64   `json:"new_price" db:"new_price"`
	OldPrice    float64   `json:"old_price" db:"old_price"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"date" db:"date"`
}
