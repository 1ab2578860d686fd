package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/martify/go-storefront/internal/cart"
	"github.com/martify/go-storefront/internal/coupon"
	kafkax "github.com/martify/go-storefront/internal/kafka"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrNotAtReview = errors.New("checkout is not at the review step")
)

type OrderStore interface {
	SaveOrder(ctx context.Context, o Order, items []OrderItem) error
}

type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Service turns a reviewed cart into a placed order: it freezes totals,
// persists the order, announces it on the bus and clears the ledger.
type Service struct {
	Orders   OrderStore
	Producer Publisher
	Service  string // producer name stamped on events
}

// PlaceOrder completes the checkout flow. The flow must be at the
// review step and the ledger non-empty. On success the ledger is
// cleared and the flow moves to placed; there is no undo.
func (s *Service) PlaceOrder(ctx context.Context, userID string, ledger *cart.Ledger, applied *coupon.Coupon, flow *Flow) (Order, error) {
	if flow.Step != StepReview {
		return Order{}, ErrNotAtReview
	}
	if ledger.Empty() {
		return Order{}, ErrEmptyCart
	}

	sum := coupon.Totals(ledger.Subtotal(), applied)
	orderID := uuid.NewString()

	o := Order{
		ID:            orderID,
		Number:        OrderNumber(orderID),
		UserID:        userID,
		Status:        StatusPlaced,
		Subtotal:      sum.Subtotal,
		Discount:      sum.Discount,
		Shipping:      sum.Shipping,
		Total:         sum.Total,
		PaymentMethod: flow.PaymentMethod,
		Address:       flow.Address,
		PlacedAt:      time.Now().UTC(),
	}
	if applied != nil {
		o.CouponCode = applied.Code
	}

	lines := ledger.Items()
	items := make([]OrderItem, 0, len(lines))
	evItems := make([]OrderPlacedItem, 0, len(lines))
	for _, ln := range lines {
		items = append(items, OrderItem{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			ProductID: ln.Product.ID,
			Name:      ln.Product.Name,
			Qty:       ln.Quantity,
			UnitPrice: ln.Product.Price,
		})
		evItems = append(evItems, OrderPlacedItem{
			ProductID: ln.Product.ID,
			Name:      ln.Product.Name,
			Qty:       ln.Quantity,
			UnitPrice: ln.Product.Price,
		})
	}

	if err := s.Orders.SaveOrder(ctx, o, items); err != nil {
		return Order{}, err
	}

	if s.Producer != nil {
		ev := Envelope{
			EventID:      uuid.NewString(),
			EventType:    EventOrderPlaced,
			EventVersion: 1,
			OccurredAt:   time.Now().UTC(),
			Producer:     s.Service,
			Payload: kafkax.MustMarshal(OrderPlacedPayload{
				OrderID:       orderID,
				Number:        o.Number,
				UserID:        userID,
				Items:         evItems,
				Subtotal:      sum.Subtotal,
				Discount:      sum.Discount,
				Shipping:      sum.Shipping,
				Total:         sum.Total,
				PaymentMethod: o.PaymentMethod,
			}),
		}
		s.Producer.Publish(PartitionKey(orderID), kafkax.MustMarshal(ev),
			kafkago.Header{Key: "x-event-type", Value: []byte(EventOrderPlaced)},
			kafkago.Header{Key: "x-event-version", Value: []byte("1")},
		)
	}

	ledger.Clear()
	flow.Step = StepPlaced
	return o, nil
}

// OrderNumber derives the display order number from the order id.
// Customers see MTF-XXXXXX; the uuid remains the real identifier.
func OrderNumber(orderID string) string {
	hex := strings.ReplaceAll(orderID, "-", "")
	if len(hex) > 6 {
		hex = hex[:6]
	}
	return "MTF-" + strings.ToUpper(hex)
}
