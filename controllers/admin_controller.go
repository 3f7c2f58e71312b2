package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/catalog"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/middlewares"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/models"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/orders"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/utils"
)

// AdminLogin exchanges the admin password for a bearer token.
func AdminLogin(c *gin.Context) {
	var request struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Password != cfg.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(cfg.JWTSecret, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListOrders returns all orders for the admin table, newest first.
func ListOrders(c *gin.Context) {
	list, err := orderStore.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetOrderDetails returns one order with its line items joined to the live
// product record where it still exists.
func GetOrderDetails(c *gin.Context) {
	order, err := orderStore.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus moves an order to any of the five statuses.
func UpdateOrderStatus(c *gin.Context) {
	success := false
	defer func() {
		middlewares.RecordOrderOperation("update_status", success)
	}()

	orderID := c.Param("id")

	var request struct {
		Status string `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := orderStore.UpdateStatus(c.Request.Context(), orderID, request.Status); err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	success = true
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order_id": orderID})

	if rabbitMQ != nil {
		priority := uint8(5)
		if request.Status == models.StatusCancelled { // cancellations jump the queue
			priority = 8
		}

		event := models.OrderEvent{
			OrderID:  orderID,
			Type:     models.EventStatusUpdated,
			Status:   request.Status,
			Occurred: time.Now(),
		}
		if err := rabbitMQ.PublishOrderEvent(event, priority); err != nil {
			log.WithError(err).WithField("order_id", orderID).Warn("failed to publish status update event")
		}
	}
}

// CreateProduct inserts a new catalog entry from the admin form.
func CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = ""

	product, err := catalogStore.Upsert(c.Request.Context(), input)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct rewrites an existing catalog entry.
func UpdateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	product, err := catalogStore.Upsert(c.Request.Context(), input)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a catalog entry. Historical order items keep their
// price snapshot.
func DeleteProduct(c *gin.Context) {
	if err := catalogStore.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}
