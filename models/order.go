package models

import (
	"time"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerAddress string    `json:"customer_address"`
	CustomerPhone   string    `json:"customer_phone"`
	TotalAmount     float64   `json:"total_amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// OrderItem binds one product, quantity and purchase-time price to an
// order. PriceAtPurchase is a snapshot and never tracks later catalog
// changes.
type OrderItem struct {
	ID              int64   `json:"id"`
	OrderID         string  `json:"order_id"`
	ProductID       string  `json:"product_id"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

type DeliveryDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type OrderResponse struct {
	ID              string            `json:"id"`
	CustomerName    string            `json:"customer_name"`
	CustomerAddress string            `json:"customer_address"`
	CustomerPhone   string            `json:"customer_phone"`
	TotalAmount     float64           `json:"total_amount"`
	Status          string            `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	Items           []OrderItemDetail `json:"items"`
}

// OrderItemDetail joins a line item to the live product record for display.
// ProductName is empty when the product has since been deleted; the price
// snapshot survives regardless.
type OrderItemDetail struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name,omitempty"`
	ImageURL        string  `json:"image_url,omitempty"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
	Subtotal        float64 `json:"subtotal"`
}

const (
	EventOrderCreated   = "created"
	EventStatusUpdated  = "status_updated"
	EventReconcileItems = "reconcile_items"
)

type OrderEvent struct {
	OrderID       string    `json:"order_id"`
	Type          string    `json:"type"`
	Status        string    `json:"status,omitempty"`
	Total         float64   `json:"total,omitempty"`
	ItemsWritten  int       `json:"items_written,omitempty"`
	ItemsExpected int       `json:"items_expected,omitempty"`
	Occurred      time.Time `json:"occurred"`
}
