package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

func TestOrderRepository_PostgresCreateGetList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	now := time.Now().UTC().Round(time.Microsecond)
	order1 := sampleOrder("order-1", now.Add(-2*time.Minute))
	order2 := sampleOrder("order-2", now.Add(-time.Minute))

	if err := repo.Create(ctx, order1); err != nil {
		t.Fatalf("create order1: %v", err)
	}
	if err := repo.Create(ctx, order2); err != nil {
		t.Fatalf("create order2: %v", err)
	}

	got, err := repo.Get(ctx, order1.ID)
	if err != nil {
		t.Fatalf("get order1: %v", err)
	}
	if got.ID != order1.ID || got.Status != order1.Status || got.Currency != order1.Currency {
		t.Fatalf("unexpected order payload: %+v", got)
	}
	if got.TotalAmountMinor != order1.TotalAmountMinor || got.TotalItems != order1.TotalItems {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if len(got.Items) != len(order1.Items) {
		t.Fatalf("unexpected items count: got=%d want=%d", len(got.Items), len(order1.Items))
	}
	if got.Items[0].Name != "Widget" || got.Items[0].ProductID != 1 {
		t.Fatalf("unexpected item snapshot: %+v", got.Items[0])
	}

	page, err := repo.List(ctx, domain.OrderFilter{}, 0, 1)
	if err != nil {
		t.Fatalf("list first page: %v", err)
	}
	if len(page) != 1 || page[0].ID != order1.ID {
		t.Fatalf("unexpected first page: %+v", page)
	}
	if len(page[0].Items) != 1 {
		t.Fatalf("expected items on page, got %+v", page[0].Items)
	}

	total, err := repo.Count(ctx, domain.OrderFilter{})
	if err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 orders, got %d", total)
	}

	status := domain.OrderStatusDelivered
	filtered, err := repo.List(ctx, domain.OrderFilter{Status: &status}, 0, 10)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 0 {
		t.Fatalf("expected no delivered orders, got %+v", filtered)
	}
}

func TestOrderRepository_PostgresUpdateStatusAndMarkPaid(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	now := time.Now().UTC().Round(time.Microsecond)
	order := sampleOrder("order-status", now)

	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create order: %v", err)
	}

	updated, err := repo.UpdateStatus(ctx, order.ID, domain.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.OrderStatusDelivered {
		t.Fatalf("unexpected status after update: %s", updated.Status)
	}
	if updated.TotalAmountMinor != order.TotalAmountMinor {
		t.Fatalf("totals must not change on status update: %+v", updated)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("expected items in update result, got %+v", updated.Items)
	}

	paidAt := now.Add(time.Minute)
	paid, err := repo.MarkPaid(ctx, order.ID, paidAt, "https://receipts.example/r1")
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if !paid.Paid || paid.Status != domain.OrderStatusPaid {
		t.Fatalf("expected paid order, got %+v", paid)
	}
	if paid.PaidAt == nil || !paid.PaidAt.Equal(paidAt) {
		t.Fatalf("unexpected paid_at: %v", paid.PaidAt)
	}
	if paid.ReceiptURL != "https://receipts.example/r1" {
		t.Fatalf("unexpected receipt url: %s", paid.ReceiptURL)
	}
}

func TestOrderRepository_PostgresErrors(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	now := time.Now().UTC().Round(time.Microsecond)
	base := sampleOrder("order-errors", now)

	if _, err := repo.Get(ctx, "missing-order"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	if _, err := repo.UpdateStatus(ctx, "missing-order", domain.OrderStatusDelivered); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound on update missing, got %v", err)
	}

	if _, err := repo.MarkPaid(ctx, "missing-order", now, ""); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound on mark paid missing, got %v", err)
	}

	if err := repo.Create(ctx, base); err != nil {
		t.Fatalf("create base order: %v", err)
	}
	if err := repo.Create(ctx, base); !errors.Is(err, domain.ErrOrderCreate) {
		t.Fatalf("expected ErrOrderCreate on duplicate create, got %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected unique violation for code 23505")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "22001"}) {
		t.Fatal("unexpected unique violation for non-unique code")
	}
	if isUniqueViolation(errors.New("plain error")) {
		t.Fatal("plain error must not be unique violation")
	}
}

func sampleOrder(id string, createdAt time.Time) domain.Order {
	items := []domain.OrderItem{
		{
			ID:         id + "-item-1",
			ProductID:  1,
			Name:       "Widget",
			Qty:        2,
			PriceMinor: 1200,
			CreatedAt:  createdAt,
		},
	}

	return domain.Order{
		ID:               id,
		Status:           domain.OrderStatusPending,
		Currency:         "usd",
		TotalAmountMinor: 2400,
		TotalItems:       2,
		Items:            items,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}
}
