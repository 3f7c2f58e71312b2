package consumers

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/config"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/database"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/models"
)

// StartOrderConsumer drains the order event queue and the dead-letter
// queue in background goroutines.
func StartOrderConsumer(ch *amqp.Channel, cfg *config.Config) {
	msgs, err := ch.Consume(
		cfg.OrderQueue,
		"shop-service", // consumer tag
		false,          // auto-ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("Failed to register consumer: %v", err)
	}

	go func() {
		for msg := range msgs {
			processOrderMessage(msg)
		}
	}()

	dlqMsgs, err := ch.Consume(
		cfg.DeadLetterQueue,
		"shop-service-dlq",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Errorf("Failed to register DLQ consumer: %v", err)
		return
	}

	go func() {
		for msg := range dlqMsgs {
			processDeadLetterMessage(msg)
		}
	}()
}

func processOrderMessage(msg amqp.Delivery) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Recovered from panic in message processing: %v", r)
		}
	}()

	var event models.OrderEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Errorf("Invalid event payload: %s", msg.Body)
		_ = msg.Nack(false, false) // reject without requeue, lands in the DLQ
		return
	}

	log.WithFields(log.Fields{
		"order_id": event.OrderID,
		"type":     event.Type,
	}).Info("Processing order event")

	switch event.Type {
	case models.EventOrderCreated:
		handleOrderCreated(event)
	case models.EventStatusUpdated:
		handleStatusUpdated(event)
	case models.EventReconcileItems:
		handleReconcileItems(event)
	default:
		log.Errorf("Unknown event type: %s", event.Type)
	}

	_ = msg.Ack(false)
}

func processDeadLetterMessage(msg amqp.Delivery) {
	log.Errorf("Received dead letter: %s", msg.Body)
	_ = msg.Ack(false)
}

func handleOrderCreated(event models.OrderEvent) {
	// Downstream notification hooks go here.
	log.WithField("order_id", event.OrderID).Info("Handling order created")
}

func handleStatusUpdated(event models.OrderEvent) {
	var status string
	err := database.DB.QueryRow("SELECT status FROM orders WHERE id = ?", event.OrderID).Scan(&status)
	if err != nil {
		log.Errorf("Failed to get order status: %v", err)
		return
	}

	switch status {
	case models.StatusShipped:
		// Shipping notification hook.
	case models.StatusCancelled:
		// Cancellation handling hook.
	}
	log.WithFields(log.Fields{
		"order_id": event.OrderID,
		"status":   status,
	}).Info("Handling status update")
}

// handleReconcileItems surfaces an order header that was persisted without
// its full set of items. The items are never re-inserted automatically;
// this only makes the gap loud enough for an operator to act on.
func handleReconcileItems(event models.OrderEvent) {
	log.WithFields(log.Fields{
		"order_id":       event.OrderID,
		"total_amount":   event.Total,
		"items_written":  event.ItemsWritten,
		"items_expected": event.ItemsExpected,
	}).Error("Order needs manual reconciliation: header without full items")
}
