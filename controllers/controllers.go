package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/basket"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/catalog"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/checkout"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/config"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/orders"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/rabbitmq"
)

var (
	cfg          *config.Config
	catalogStore *catalog.Store
	orderStore   *orders.Store
	checkoutSvc  *checkout.Service
	baskets      *basket.Manager
	rabbitMQ     *rabbitmq.RabbitMQ
)

// Configure wires the handler dependencies. rmq may be nil when no broker
// is available.
func Configure(c *config.Config, cs *catalog.Store, os *orders.Store, svc *checkout.Service, bm *basket.Manager, rmq *rabbitmq.RabbitMQ) {
	cfg = c
	catalogStore = cs
	orderStore = os
	checkoutSvc = svc
	baskets = bm
	rabbitMQ = rmq
}

// writeSubmissionError maps the checkout error taxonomy onto HTTP codes.
// Validation problems are the caller's to fix; both persistence stages are
// reported as a failed submission.
func writeSubmissionError(c *gin.Context, err error) {
	var verr *checkout.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
}
