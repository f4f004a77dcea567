package kafka

import "time"

// EventType определяет тип события
type EventType string

const (
	// Order события
	EventTypeOrderCreated       EventType = "order.created"
	EventTypeOrderStatusChanged EventType = "order.status_changed"
	EventTypeOrderPaid          EventType = "order.paid"

	// Payment события (входящие от платёжного сервиса)
	EventTypePaymentSucceeded EventType = "payment.succeeded"
)

// Topics для Kafka
const (
	TopicOrderEvents      = "orders.order.events"
	TopicPaymentSucceeded = "payments.payment.succeeded"
	TopicDeadLetterQueue  = "orders.dlq" // Dead Letter Queue для failed messages
)

// Kafka headers для retry логики
const (
	HeaderRetryCount    = "x-retry-count"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
)

// OrderEvent представляет событие заказа
type OrderEvent struct {
	EventType        EventType              `json:"event_type"`
	OrderID          string                 `json:"order_id"`
	Status           string                 `json:"status"`
	Currency         string                 `json:"currency"`
	TotalAmountMinor int64                  `json:"total_amount_minor"`
	Timestamp        time.Time              `json:"timestamp"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
}

// PaymentSucceededEvent представляет подтверждение оплаты от платёжного сервиса
type PaymentSucceededEvent struct {
	OrderID    string    `json:"order_id"`
	PaymentID  string    `json:"payment_id"`
	ReceiptURL string    `json:"receipt_url"`
	PaidAt     time.Time `json:"paid_at"`
}

// NewOrderEvent создает новое событие заказа
func NewOrderEvent(eventType EventType, orderID, status, currency string, totalAmountMinor int64, metadata map[string]interface{}) *OrderEvent {
	return &OrderEvent{
		EventType:        eventType,
		OrderID:          orderID,
		Status:           status,
		Currency:         currency,
		TotalAmountMinor: totalAmountMinor,
		Timestamp:        time.Now(),
		Metadata:         metadata,
	}
}
