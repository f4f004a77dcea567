package domain

import (
	"context"
	"time"
)

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create атомарно сохраняет заказ вместе с позициями: либо записываются
	// и шапка, и все позиции, либо ничего.
	Create(ctx context.Context, order Order) error
	// Get возвращает заказ с позициями или ErrOrderNotFound, если его нет.
	Get(ctx context.Context, id string) (Order, error)
	// List возвращает страницу заказов по фильтру в стабильном порядке
	// (created_at, id). Позиции загружаются вместе с заказами.
	List(ctx context.Context, filter OrderFilter, offset, limit int) ([]Order, error)
	// Count возвращает количество заказов, подходящих под фильтр.
	Count(ctx context.Context, filter OrderFilter) (int, error)
	// UpdateStatus меняет только поле статуса и возвращает обновлённый заказ
	// с позициями как они сохранены (без обогащения из каталога).
	UpdateStatus(ctx context.Context, id string, status OrderStatus) (Order, error)
	// MarkPaid выставляет paid/paid_at/receipt_url и переводит заказ в paid.
	MarkPaid(ctx context.Context, id string, paidAt time.Time, receiptURL string) (Order, error)
}
