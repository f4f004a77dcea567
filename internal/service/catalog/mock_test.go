package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

func TestMockCatalog_ValidateProducts(t *testing.T) {
	mock := NewMockCatalog(
		domain.Product{ID: 1, Name: "Widget", PriceMinor: 1200},
		domain.Product{ID: 2, Name: "Gadget", PriceMinor: 500},
	)

	products, err := mock.ValidateProducts(context.Background(), []int64{1, 3})
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != 1 {
		t.Fatalf("expected only product 1, got %v", products)
	}
	if mock.Calls != 1 {
		t.Fatalf("expected 1 call, got %d", mock.Calls)
	}
	if len(mock.LastIDs) != 2 || mock.LastIDs[1] != 3 {
		t.Fatalf("unexpected recorded ids: %v", mock.LastIDs)
	}
}

func TestMockCatalog_Error(t *testing.T) {
	mock := NewMockCatalog()
	mock.Err = errors.New("catalog down")

	if _, err := mock.ValidateProducts(context.Background(), []int64{1}); err == nil {
		t.Fatal("expected configured error")
	}
}
