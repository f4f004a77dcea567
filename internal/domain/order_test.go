package domain

import (
	"errors"
	"testing"
	"time"
)

func validOrder() Order {
	now := time.Now().UTC()
	return Order{
		ID:               "order-1",
		Status:           OrderStatusPending,
		Currency:         "usd",
		TotalAmountMinor: 2400,
		TotalItems:       2,
		Items: []OrderItem{
			{ID: "item-1", ProductID: 1, Name: "Widget", Qty: 2, PriceMinor: 1200, CreatedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOrder_ValidateInvariants_OK(t *testing.T) {
	order := validOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestOrder_ValidateInvariants_AmountMismatch(t *testing.T) {
	order := validOrder()
	order.TotalAmountMinor = 100

	errs := order.ValidateInvariants()
	if len(errs) == 0 {
		t.Fatal("expected validation errors")
	}

	found := false
	for _, err := range errs {
		if errors.Is(err, ErrAmountMismatch) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrAmountMismatch, got %v", errs)
	}
}

func TestOrder_ValidateInvariants_TotalItemsMismatch(t *testing.T) {
	order := validOrder()
	order.TotalItems = 7

	errs := order.ValidateInvariants()
	found := false
	for _, err := range errs {
		if errors.Is(err, ErrTotalItemsMismatch) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrTotalItemsMismatch, got %v", errs)
	}
}

func TestOrder_ValidateInvariants_CollectsFieldErrors(t *testing.T) {
	order := Order{
		Status: OrderStatus("unknown"),
		Items: []OrderItem{
			{ProductID: 0, Qty: 0, PriceMinor: -1},
		},
	}

	errs := order.ValidateInvariants()
	for _, want := range []error{ErrCurrencyRequired, ErrStatusInvalid, ErrProductIDInvalid, ErrItemQtyInvalid, ErrItemPriceInvalid} {
		found := false
		for _, err := range errs {
			if errors.Is(err, want) {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %v in %v", want, errs)
		}
	}
}

func TestOrder_ProductIDs_Distinct(t *testing.T) {
	order := validOrder()
	order.Items = append(order.Items,
		OrderItem{ID: "item-2", ProductID: 2, Qty: 1, PriceMinor: 100},
		OrderItem{ID: "item-3", ProductID: 1, Qty: 3, PriceMinor: 1200},
	)

	ids := order.ProductIDs()
	if len(ids) != 2 {
		t.Fatalf("expected 2 distinct ids, got %v", ids)
	}
	if ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("expected ids in first-seen order, got %v", ids)
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusPending, OrderStatusPaid, OrderStatusDelivered, OrderStatusCanceled} {
		if !status.Valid() {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if OrderStatus("shipped").Valid() {
		t.Fatal("expected unknown status to be invalid")
	}
}
