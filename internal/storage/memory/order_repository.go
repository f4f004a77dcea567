package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]domain.Order),
	}
}

// Create сохраняет новый заказ, если ID ещё не занят.
func (r *orderRepositoryInMemory) Create(_ context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.ID]; exists {
		return domain.ErrOrderCreate
	}
	// Сохраняем копию позиций, чтобы избежать непредсказуемых мутаций извне.
	order.Items = cloneItems(order.Items)
	r.items[order.ID] = order
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(_ context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	order.Items = cloneItems(order.Items)
	return order, nil
}

// List возвращает страницу заказов по фильтру в порядке (created_at, id).
func (r *orderRepositoryInMemory) List(_ context.Context, filter domain.OrderFilter, offset, limit int) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.matchLocked(filter)
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []domain.Order{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	result := make([]domain.Order, 0, len(matched))
	for _, order := range matched {
		order.Items = cloneItems(order.Items)
		result = append(result, order)
	}
	return result, nil
}

// Count возвращает количество заказов, подходящих под фильтр.
func (r *orderRepositoryInMemory) Count(_ context.Context, filter domain.OrderFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.matchLocked(filter)), nil
}

// UpdateStatus меняет только статус заказа и возвращает обновлённую запись.
func (r *orderRepositoryInMemory) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	r.items[id] = order

	order.Items = cloneItems(order.Items)
	return order, nil
}

// MarkPaid выставляет признак оплаты и переводит заказ в paid.
func (r *orderRepositoryInMemory) MarkPaid(_ context.Context, id string, paidAt time.Time, receiptURL string) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	order.Status = domain.OrderStatusPaid
	order.Paid = true
	order.PaidAt = &paidAt
	order.ReceiptURL = receiptURL
	order.UpdatedAt = time.Now().UTC()
	r.items[id] = order

	order.Items = cloneItems(order.Items)
	return order, nil
}

// matchLocked собирает заказы под фильтром; вызывающий держит блокировку.
func (r *orderRepositoryInMemory) matchLocked(filter domain.OrderFilter) []domain.Order {
	result := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		if filter.Status != nil && order.Status != *filter.Status {
			continue
		}
		result = append(result, order)
	}
	return result
}

func cloneItems(items []domain.OrderItem) []domain.OrderItem {
	if items == nil {
		return nil
	}
	cloned := make([]domain.OrderItem, len(items))
	copy(cloned, items)
	return cloned
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
