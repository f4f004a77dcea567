package app

import (
	"time"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// newTestOrder создаёт тестовый заказ для использования в тестах.
func newTestOrder() domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:               "test-order-1",
		Status:           domain.OrderStatusPending,
		Currency:         "usd",
		TotalAmountMinor: 1200,
		TotalItems:       1,
		Items: []domain.OrderItem{
			{
				ID:         "item-1",
				ProductID:  1,
				Name:       "Widget",
				Qty:        1,
				PriceMinor: 1200,
				CreatedAt:  now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
