package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
)

func newOrder(id string, createdAt time.Time) domain.Order {
	return domain.Order{
		ID:               id,
		Status:           domain.OrderStatusPending,
		Currency:         "usd",
		TotalAmountMinor: 2400,
		TotalItems:       2,
		Items: []domain.OrderItem{
			{ID: "item-" + id, ProductID: 1, Name: "Widget", Qty: 2, PriceMinor: 1200, CreatedAt: createdAt},
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestOrderRepository_CreateGet(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	order := newOrder("order-1", time.Now().UTC())

	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != order.ID {
		t.Fatalf("expected id %s, got %s", order.ID, stored.ID)
	}
	if len(stored.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(stored.Items))
	}
}

func TestOrderRepository_GetNotFound(t *testing.T) {
	repo := memory.NewOrderRepository()

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_CreateDuplicate(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	order := newOrder("order-1", time.Now().UTC())

	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, order); err == nil {
		t.Fatal("expected duplicate create to fail")
	}
}

func TestOrderRepository_ListPagination(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		order := newOrder(string(rune('a'+i)), base.Add(time.Duration(i)*time.Second))
		if err := repo.Create(ctx, order); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	page, err := repo.List(ctx, domain.OrderFilter{}, 2, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(page))
	}
	if page[0].ID != "c" || page[1].ID != "d" {
		t.Fatalf("expected stable created_at order, got %s, %s", page[0].ID, page[1].ID)
	}

	total, err := repo.Count(ctx, domain.OrderFilter{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected count 5, got %d", total)
	}
}

func TestOrderRepository_ListFilterByStatus(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	base := time.Now().UTC()

	pending := newOrder("order-1", base)
	if err := repo.Create(ctx, pending); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	delivered := newOrder("order-2", base.Add(time.Second))
	delivered.Status = domain.OrderStatusDelivered
	if err := repo.Create(ctx, delivered); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	status := domain.OrderStatusDelivered
	orders, err := repo.List(ctx, domain.OrderFilter{Status: &status}, 0, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "order-2" {
		t.Fatalf("expected only delivered order, got %v", orders)
	}
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	order := newOrder("order-1", time.Now().UTC())
	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.UpdateStatus(ctx, order.ID, domain.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != domain.OrderStatusDelivered {
		t.Fatalf("expected delivered, got %s", updated.Status)
	}
	if updated.TotalAmountMinor != order.TotalAmountMinor {
		t.Fatalf("expected amount unchanged, got %d", updated.TotalAmountMinor)
	}

	_, err = repo.UpdateStatus(ctx, "missing", domain.OrderStatusDelivered)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_MarkPaid(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	order := newOrder("order-1", time.Now().UTC())
	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	paidAt := time.Now().UTC()
	updated, err := repo.MarkPaid(ctx, order.ID, paidAt, "https://receipts.example/r1")
	if err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if !updated.Paid || updated.Status != domain.OrderStatusPaid {
		t.Fatalf("expected paid order, got %+v", updated)
	}
	if updated.PaidAt == nil || !updated.PaidAt.Equal(paidAt) {
		t.Fatalf("expected paidAt %v, got %v", paidAt, updated.PaidAt)
	}
	if updated.ReceiptURL != "https://receipts.example/r1" {
		t.Fatalf("unexpected receipt url %s", updated.ReceiptURL)
	}
}
