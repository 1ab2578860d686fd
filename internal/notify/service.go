package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/martify/go-storefront/internal/checkout"
	kafkax "github.com/martify/go-storefront/internal/kafka"
	"github.com/martify/go-storefront/internal/redisx"
)

// OrderConfirmer moves an order through the fulfilment status table.
type OrderConfirmer interface {
	UpdateStatus(ctx context.Context, orderID string, to checkout.Status) error
}

// Service consumes placed-order events: it confirms the order and sends
// the confirmation. The delivery channel here is the log; swapping in
// email keeps the same dedup and decode path.
type Service struct {
	Orders      OrderConfirmer
	Redis       *redis.Client
	ServiceName string
}

// HandleOrderPlaced is wired as the consumer handler. A non-nil return
// leaves the offset uncommitted, so the broker redelivers.
func (s *Service) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	var env checkout.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != checkout.EventOrderPlaced {
		return nil
	}

	// dedup via Redis on event_id; redeliveries notify once
	if s.Redis != nil {
		dkey := fmt.Sprintf(redisx.KeyDedup, "notify", env.EventID)
		exists, _ := redisx.Exists(ctx, s.Redis, dkey)
		if exists {
			return nil
		}
		_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	}

	p, err := kafkax.UnwrapPayload[checkout.OrderPlacedPayload](env.Payload)
	if err != nil {
		return err
	}

	// placed -> confirmed. A missing order or an order already moved
	// past placed is not worth a redelivery loop.
	if s.Orders != nil {
		err := s.Orders.UpdateStatus(ctx, p.OrderID, checkout.StatusConfirmed)
		switch {
		case err == nil:
		case errors.Is(err, checkout.ErrOrderNotFound), errors.Is(err, checkout.ErrInvalidTransition):
			log.Printf("[%s] order %s not confirmed: %v", s.ServiceName, p.Number, err)
		default:
			return err
		}
	}

	units := 0
	for _, it := range p.Items {
		units += it.Qty
	}
	log.Printf("[%s] order %s confirmed for user %s: %d item(s), total %.2f",
		s.ServiceName, p.Number, p.UserID, units, p.Total)
	return nil
}
