package orders

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/models"
)

// ErrNotFound is returned when an order id does not exist.
var ErrNotFound = errors.New("order not found")

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// InsertOrder persists the order header and returns it with its assigned id
// and timestamps. This is a single plain insert; line items are written
// separately by InsertOrderItems.
func (s *Store) InsertOrder(ctx context.Context, order models.Order) (models.Order, error) {
	order.ID = uuid.New().String()
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (id, customer_name, customer_address, customer_phone, total_amount, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.CustomerName, order.CustomerAddress, order.CustomerPhone,
		order.TotalAmount, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// InsertOrderItems writes the line items one statement at a time and
// reports how many landed before any failure.
func (s *Store) InsertOrderItems(ctx context.Context, items []models.OrderItem) (int, error) {
	for i, item := range items {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase)
			VALUES (?, ?, ?, ?)`,
			item.OrderID, item.ProductID, item.Quantity, item.PriceAtPurchase,
		)
		if err != nil {
			return i, err
		}
	}
	return len(items), nil
}

// UpdateStatus moves an order to any of the five statuses. No transition
// graph is enforced; the admin picks freely.
func (s *Store) UpdateStatus(ctx context.Context, orderID, status string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ?",
		status, orderID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all orders, newest first.
func (s *Store) List(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer_name, customer_address, customer_phone, total_amount, status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerAddress, &o.CustomerPhone,
			&o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			log.WithError(err).Error("error scanning order row")
			continue
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Get returns one order with its line items, joined to the live product
// record where it still exists. Items whose product was deleted keep their
// snapshot price and show up without a name or image.
func (s *Store) Get(ctx context.Context, orderID string) (models.OrderResponse, error) {
	var order models.OrderResponse
	err := s.db.QueryRowContext(ctx, `
		SELECT id, customer_name, customer_address, customer_phone, total_amount, status, created_at
		FROM orders
		WHERE id = ?`, orderID).Scan(
		&order.ID, &order.CustomerName, &order.CustomerAddress, &order.CustomerPhone,
		&order.TotalAmount, &order.Status, &order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OrderResponse{}, ErrNotFound
		}
		return models.OrderResponse{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT oi.product_id, oi.quantity, oi.price_at_purchase, p.name, p.image_url
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY oi.id ASC`, orderID)
	if err != nil {
		return models.OrderResponse{}, err
	}
	defer rows.Close()

	order.Items = make([]models.OrderItemDetail, 0)
	for rows.Next() {
		var item models.OrderItemDetail
		var name, imageURL sql.NullString
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.PriceAtPurchase, &name, &imageURL); err != nil {
			log.WithError(err).Error("error scanning order item row")
			continue
		}
		item.ProductName = name.String
		item.ImageURL = imageURL.String
		item.Subtotal = item.PriceAtPurchase * float64(item.Quantity)
		order.Items = append(order.Items, item)
	}
	return order, rows.Err()
}
