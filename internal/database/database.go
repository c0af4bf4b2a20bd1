package database

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/qwarnma600-sudo/ecommerces/internal/logger"
)

// OpenDB creates and configures the MySQL connection pool for the given DSN.
// The DSN must carry parseTime=true so TIMESTAMP columns scan into time.Time.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	log := logger.Get()
	log.Info().Msg("database connection pool established")
	return db, nil
}

// Migrate creates the three tables if they are missing. Safe to run on
// every startup; existing data is never touched.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255),
			image VARCHAR(255),
			category VARCHAR(100),
			new_price DECIMAL(10,2),
			old_price DECIMAL(10,2),
			description TEXT,
			date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100),
			email VARCHAR(100) UNIQUE,
			password VARCHAR(100),
			cartData TEXT,
			date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255),
			address VARCHAR(255),
			phone VARCHAR(20),
			amount DECIMAL(10,2),
			status VARCHAR(50) DEFAULT 'Pending',
			date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	log := logger.Get()
	log.Info().Msg("products, users and orders tables are ready")
	return nil
}
