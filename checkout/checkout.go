package checkout

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/basket"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/middlewares"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/models"
)

// OrderStore is the slice of the persistence collaborator the workflow
// needs: two plain inserts, issued strictly in order. The store exposes no
// multi-statement transaction, so the workflow owns the ordering and the
// partial-failure contract itself.
type OrderStore interface {
	InsertOrder(ctx context.Context, order models.Order) (models.Order, error)
	// InsertOrderItems reports how many items landed before any failure.
	InsertOrderItems(ctx context.Context, items []models.OrderItem) (int, error)
}

// EventPublisher fans order lifecycle events out to the message broker.
type EventPublisher interface {
	PublishOrderEvent(event models.OrderEvent, priority uint8) error
}

type Service struct {
	store        OrderStore
	events       EventPublisher
	writeTimeout time.Duration
}

// NewService builds the submission workflow. events may be nil when no
// broker is wired (tests, degraded startup). writeTimeout bounds each of
// the two persistence round-trips; a timeout counts as a failed write.
func NewService(store OrderStore, events EventPublisher, writeTimeout time.Duration) *Service {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &Service{store: store, events: events, writeTimeout: writeTimeout}
}

type purchaseLine struct {
	productID string
	quantity  int
	unitPrice float64
}

// Checkout submits the whole basket as one order. On full success the
// basket is cleared; on any failure it is left untouched so the customer
// can retry.
func (s *Service) Checkout(ctx context.Context, b *basket.Basket, details models.DeliveryDetails) (models.Order, error) {
	if err := validateDetails(details); err != nil {
		return models.Order{}, err
	}
	lines := b.Lines()
	if len(lines) == 0 {
		return models.Order{}, &ValidationError{Reason: "basket is empty"}
	}

	purchase := make([]purchaseLine, len(lines))
	for i, l := range lines {
		purchase[i] = purchaseLine{productID: l.ProductID, quantity: l.Quantity, unitPrice: l.UnitPrice}
	}

	order, err := s.submit(ctx, purchase, details)
	if err != nil {
		return models.Order{}, err
	}
	b.Clear()
	return order, nil
}

// QuickOrder places a single-item order straight from the product page.
// Quantity is fixed at 1 and the unit price is resolved at submission time,
// unlike basket lines which keep their add-time price.
func (s *Service) QuickOrder(ctx context.Context, product models.Product, details models.DeliveryDetails) (models.Order, error) {
	if err := validateDetails(details); err != nil {
		return models.Order{}, err
	}
	line := purchaseLine{productID: product.ID, quantity: 1, unitPrice: product.EffectivePrice()}
	return s.submit(ctx, []purchaseLine{line}, details)
}

func validateDetails(d models.DeliveryDetails) error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return &ValidationError{Reason: "name is required"}
	case strings.TrimSpace(d.Address) == "":
		return &ValidationError{Reason: "address is required"}
	case strings.TrimSpace(d.Phone) == "":
		return &ValidationError{Reason: "phone is required"}
	}
	return nil
}

// submit runs the two-step write: header first, so a header always marks a
// real attempt, then the line items referencing it.
func (s *Service) submit(ctx context.Context, lines []purchaseLine, details models.DeliveryDetails) (models.Order, error) {
	var total float64
	for _, l := range lines {
		total += l.unitPrice * float64(l.quantity)
	}

	header := models.Order{
		CustomerName:    details.Name,
		CustomerAddress: details.Address,
		CustomerPhone:   details.Phone,
		TotalAmount:     total,
		Status:          models.StatusPending,
	}

	hctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	order, err := s.store.InsertOrder(hctx, header)
	cancel()
	if err != nil {
		return models.Order{}, &PersistenceError{Stage: StageHeader, Err: err}
	}

	items := make([]models.OrderItem, len(lines))
	for i, l := range lines {
		items[i] = models.OrderItem{
			OrderID:         order.ID,
			ProductID:       l.productID,
			Quantity:        l.quantity,
			PriceAtPurchase: l.unitPrice,
		}
	}

	ictx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	written, err := s.store.InsertOrderItems(ictx, items)
	cancel()
	if err != nil {
		s.flagOrphanedOrder(order, written, len(items), err)
		return models.Order{}, &PersistenceError{
			Stage:    StageItems,
			OrderID:  order.ID,
			Written:  written,
			Expected: len(items),
			Err:      err,
		}
	}

	s.publish(models.OrderEvent{
		OrderID:  order.ID,
		Type:     models.EventOrderCreated,
		Status:   order.Status,
		Total:    order.TotalAmount,
		Occurred: time.Now(),
	}, priorityFor(total))

	return order, nil
}

// Large orders jump the queue.
func priorityFor(total float64) uint8 {
	if total > 1000 {
		return 9
	}
	return 5
}

const reconcilePriority = 9

// flagOrphanedOrder surfaces a header that landed without its full set of
// items. The write is never retried here: replaying the submission would
// create a second header, so reconciliation is left to an operator.
func (s *Service) flagOrphanedOrder(order models.Order, written, expected int, err error) {
	log.WithFields(log.Fields{
		"order_id":       order.ID,
		"items_written":  written,
		"items_expected": expected,
	}).WithError(err).Error("order header persisted without its items")
	middlewares.RecordOrphanedOrder()
	s.publish(models.OrderEvent{
		OrderID:       order.ID,
		Type:          models.EventReconcileItems,
		Total:         order.TotalAmount,
		ItemsWritten:  written,
		ItemsExpected: expected,
		Occurred:      time.Now(),
	}, reconcilePriority)
}

func (s *Service) publish(event models.OrderEvent, priority uint8) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishOrderEvent(event, priority); err != nil {
		log.WithError(err).WithField("order_id", event.OrderID).Warn("failed to publish order event")
	}
}
