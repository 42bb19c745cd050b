package razorpay

import "encoding/json"

const (
	EventOrderPaid         = "order.paid"
	EventPaymentCaptured   = "payment.captured"
	EventPaymentAuthorized = "payment.authorized"
)

// WebhookEvent is the subset of the webhook payload the reconciler needs.
// Razorpay nests the payment and order entities under payload; either may be
// absent depending on the event type.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
		Order struct {
			Entity struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"entity"`
		} `json:"order"`
	} `json:"payload"`
}

func ParseWebhookEvent(body []byte) (WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return WebhookEvent{}, err
	}
	return event, nil
}

// OrderID extracts the gateway order id, preferring the payment entity and
// falling back to the order entity. Empty when neither carries one.
func (e WebhookEvent) OrderID() string {
	if id := e.Payload.Payment.Entity.OrderID; id != "" {
		return id
	}
	return e.Payload.Order.Entity.ID
}

// PaymentID returns the payment entity id, empty when absent.
func (e WebhookEvent) PaymentID() string {
	return e.Payload.Payment.Entity.ID
}

// IsPaid reports whether the event type indicates a captured, authorized or
// paid outcome.
func (e WebhookEvent) IsPaid() bool {
	switch e.Event {
	case EventOrderPaid, EventPaymentCaptured, EventPaymentAuthorized:
		return true
	}
	return false
}
