package domain

import (
	"context"
	"time"
)

// ProductCatalog описывает взаимодействие с внешним каталогом товаров.
type ProductCatalog interface {
	// ValidateProducts возвращает снимки товаров по идентификаторам.
	// Нерезолвящиеся id просто отсутствуют в ответе и сами по себе
	// ошибкой не являются.
	ValidateProducts(ctx context.Context, ids []int64) ([]Product, error)
}

// PaymentProvider описывает взаимодействие с платёжным сервисом.
type PaymentProvider interface {
	// CreateSession запрашивает платёжную сессию для заказа.
	CreateSession(ctx context.Context, req PaymentSessionRequest) (PaymentSession, error)
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(event OutboxMessage) error
}

// OutboxRepository позволяет сохранять события для последующей публикации.
type OutboxRepository interface {
	Enqueue(msg OutboxMessage) (OutboxMessage, error)
	PullPending(limit int) ([]OutboxMessage, error)
	Stats() (OutboxStats, error)
	MarkSent(id string) error
	MarkFailed(id string) error
}

// TimelineRepository хранит события жизненного цикла заказа.
type TimelineRepository interface {
	Append(event TimelineEvent) error
	List(orderID string) ([]TimelineEvent, error)
}

// IdempotencyRepository хранит состояние обработки запросов по idempotency-key.
type IdempotencyRepository interface {
	CreateProcessing(key, requestHash string, ttlAt time.Time) (IdempotencyRecord, error)
	Get(key string) (IdempotencyRecord, error)
	MarkDone(key string, responseBody []byte, httpStatus int) error
	MarkFailed(key string, responseBody []byte, httpStatus int) error
	DeleteExpired(before time.Time, limit int) (int, error)
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
