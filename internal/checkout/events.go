package checkout

import (
	"encoding/json"
	"time"
)

const (
	EventOrderPlaced = "OrderPlaced"

	TopicOrderPlaced = "order.placed"
)

// Envelope wraps every published event with identity and provenance.
type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

type OrderPlacedItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderPlacedPayload struct {
	OrderID       string            `json:"order_id"`
	Number        string            `json:"number"`
	UserID        string            `json:"user_id,omitempty"`
	Items         []OrderPlacedItem `json:"items"`
	Subtotal      float64           `json:"subtotal"`
	Discount      float64           `json:"discount"`
	Shipping      float64           `json:"shipping"`
	Total         float64           `json:"total"`
	PaymentMethod string            `json:"payment_method"`
}

// PartitionKey keeps all events of one order on one partition.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
