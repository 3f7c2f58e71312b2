package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/config"
)

var DB *sql.DB

func InitDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return err
	}

	DB = db
	return createTables()
}

// createTables bootstraps the schema. order_items deliberately carries no
// foreign key to products: deleting a product must not touch historical
// orders, which keep their price snapshot.
func createTables() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			price DECIMAL(10,2) NOT NULL,
			discount_price DECIMAL(10,2),
			image_url TEXT,
			category VARCHAR(64) NOT NULL,
			sub_category VARCHAR(64),
			is_offer BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_products_category (category),
			INDEX idx_products_is_offer (is_offer)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(36) PRIMARY KEY,
			customer_name VARCHAR(255) NOT NULL,
			customer_address TEXT NOT NULL,
			customer_phone VARCHAR(32) NOT NULL,
			total_amount DECIMAL(10,2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			order_id VARCHAR(36) NOT NULL,
			product_id VARCHAR(36) NOT NULL,
			quantity INT NOT NULL,
			price_at_purchase DECIMAL(10,2) NOT NULL,
			INDEX idx_order_items_order_id (order_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func CloseDB() {
	if DB != nil {
		_ = DB.Close()
	}
}
