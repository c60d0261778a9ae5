package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Skotchmaster/phone_shop/pkg/kafka"
	"github.com/Skotchmaster/phone_shop/pkg/logging"
	"github.com/google/uuid"
)

const (
	TopicOrderEvents   = "order_events"
	TopicPaymentEvents = "payment_events"

	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
	EventPaymentProcessed   = "payment_processed"
)

type Event struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	OrderID   uint      `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
	Payload   any       `json:"payload,omitempty"`
}

type statusChange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// publish runs after the database commit; a failure is logged and never undoes state.
func publish(ctx context.Context, pub kafka.Publisher, topic, typ string, orderID uint, payload any) {
	if pub == nil {
		return
	}
	ev := Event{
		EventID:   uuid.NewString(),
		Type:      typ,
		OrderID:   orderID,
		CreatedAt: time.Now().UTC(),
		Payload:   payload,
	}
	if err := pub.PublishEvent(ctx, topic, strconv.FormatUint(uint64(orderID), 10), ev); err != nil {
		logging.FromContext(ctx).Warn("publish_event_error", "topic", topic, "type", typ, "order_id", orderID, "error", err)
	}
}
