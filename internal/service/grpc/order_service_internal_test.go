package grpcsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

type stubOrchestrator struct {
	createFn         func(context.Context, []domain.ItemRequest) (domain.Order, error)
	findAllFn        func(context.Context, domain.Page, *domain.OrderStatus) (domain.OrderPage, error)
	findOneFn        func(context.Context, string) (domain.Order, error)
	changeStatusFn   func(context.Context, string, domain.OrderStatus) (domain.Order, error)
	paymentSessionFn func(context.Context, string) (domain.PaymentSession, error)
	markPaidFn       func(context.Context, string, time.Time, string) (domain.Order, error)
}

func (s *stubOrchestrator) Create(ctx context.Context, items []domain.ItemRequest) (domain.Order, error) {
	if s.createFn != nil {
		return s.createFn(ctx, items)
	}
	return domain.Order{}, errors.New("not implemented")
}

func (s *stubOrchestrator) FindAll(ctx context.Context, page domain.Page, status *domain.OrderStatus) (domain.OrderPage, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx, page, status)
	}
	return domain.OrderPage{}, nil
}

func (s *stubOrchestrator) FindOne(ctx context.Context, id string) (domain.Order, error) {
	if s.findOneFn != nil {
		return s.findOneFn(ctx, id)
	}
	return domain.Order{}, domain.ErrOrderNotFound
}

func (s *stubOrchestrator) ChangeStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	if s.changeStatusFn != nil {
		return s.changeStatusFn(ctx, id, status)
	}
	return domain.Order{}, domain.ErrOrderNotFound
}

func (s *stubOrchestrator) CreatePaymentSession(ctx context.Context, orderID string) (domain.PaymentSession, error) {
	if s.paymentSessionFn != nil {
		return s.paymentSessionFn(ctx, orderID)
	}
	return domain.PaymentSession{}, domain.ErrOrderNotFound
}

func (s *stubOrchestrator) MarkPaid(ctx context.Context, orderID string, paidAt time.Time, receiptURL string) (domain.Order, error) {
	if s.markPaidFn != nil {
		return s.markPaidFn(ctx, orderID, paidAt, receiptURL)
	}
	return domain.Order{}, domain.ErrOrderNotFound
}

type stubTimelineRepository struct {
	appendFn func(domain.TimelineEvent) error
	listFn   func(string) ([]domain.TimelineEvent, error)
}

func (s *stubTimelineRepository) Append(event domain.TimelineEvent) error {
	if s.appendFn != nil {
		return s.appendFn(event)
	}
	return nil
}

func (s *stubTimelineRepository) List(orderID string) ([]domain.TimelineEvent, error) {
	if s.listFn != nil {
		return s.listFn(orderID)
	}
	return nil, nil
}

type stubIdempotencyRepository struct {
	markDoneFn   func(string, []byte, int) error
	markFailedFn func(string, []byte, int) error
}

func (s *stubIdempotencyRepository) CreateProcessing(string, string, time.Time) (domain.IdempotencyRecord, error) {
	return domain.IdempotencyRecord{}, errors.New("not implemented")
}

func (s *stubIdempotencyRepository) Get(string) (domain.IdempotencyRecord, error) {
	return domain.IdempotencyRecord{}, errors.New("not implemented")
}

func (s *stubIdempotencyRepository) MarkDone(key string, body []byte, code int) error {
	if s.markDoneFn != nil {
		return s.markDoneFn(key, body, code)
	}
	return nil
}

func (s *stubIdempotencyRepository) MarkFailed(key string, body []byte, code int) error {
	if s.markFailedFn != nil {
		return s.markFailedFn(key, body, code)
	}
	return nil
}

func (s *stubIdempotencyRepository) DeleteExpired(time.Time, int) (int, error) {
	return 0, nil
}

func newInternalTestService(orchestrator *stubOrchestrator) *OrderService {
	return NewOrderService(
		orchestrator,
		&stubTimelineRepository{},
		nil,
		log.New().WithField("test", "internal"),
	)
}

func mustStatusCode(t *testing.T, err error, expected codes.Code) {
	t.Helper()
	if status.Code(err) != expected {
		t.Fatalf("expected code %s, got %s (err=%v)", expected, status.Code(err), err)
	}
}

func sampleOrder() domain.Order {
	now := time.Unix(1700000000, 0).UTC()
	return domain.Order{
		ID:               "order-1",
		Status:           domain.OrderStatusPending,
		Currency:         "usd",
		TotalAmountMinor: 2400,
		TotalItems:       2,
		Items: []domain.OrderItem{
			{ID: "item-1", ProductID: 1, Name: "Widget", Qty: 2, PriceMinor: 1200, CreatedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNewOrderService_NilLogger(t *testing.T) {
	service := NewOrderService(&stubOrchestrator{}, &stubTimelineRepository{}, nil, nil)
	if service.logger == nil {
		t.Fatal("logger must be initialized when nil logger is provided")
	}
}

func TestCreateOrderInternal_ValidationErrors(t *testing.T) {
	service := newInternalTestService(&stubOrchestrator{})

	tests := []struct {
		name string
		req  *ordersv1.CreateOrderRequest
	}{
		{name: "items required", req: &ordersv1.CreateOrderRequest{}},
		{name: "nil item", req: &ordersv1.CreateOrderRequest{Items: []*ordersv1.OrderItemInput{nil}}},
		{name: "product id invalid", req: &ordersv1.CreateOrderRequest{Items: []*ordersv1.OrderItemInput{{ProductId: 0, Qty: 1}}}},
		{name: "qty invalid", req: &ordersv1.CreateOrderRequest{Items: []*ordersv1.OrderItemInput{{ProductId: 1, Qty: 0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.createOrderInternal(context.Background(), tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			mustStatusCode(t, err, codes.InvalidArgument)
		})
	}
}

func TestCreateOrderInternal_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		code      codes.Code
	}{
		{
			name:      "unresolved product",
			createErr: errors.Join(domain.ErrOrderCreate, domain.ErrProductUnresolved),
			code:      codes.FailedPrecondition,
		},
		{
			name:      "catalog unavailable",
			createErr: errors.Join(domain.ErrOrderCreate, domain.ErrCatalogLookup),
			code:      codes.Unavailable,
		},
		{
			name:      "internal error",
			createErr: errors.New("db down"),
			code:      codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newInternalTestService(&stubOrchestrator{
				createFn: func(context.Context, []domain.ItemRequest) (domain.Order, error) {
					return domain.Order{}, tt.createErr
				},
			})
			_, err := service.createOrderInternal(context.Background(), &ordersv1.CreateOrderRequest{
				Items: []*ordersv1.OrderItemInput{{ProductId: 1, Qty: 1}},
			})
			if err == nil {
				t.Fatal("expected create error")
			}
			mustStatusCode(t, err, tt.code)
		})
	}
}

func TestCreateOrderInternal_PassesItems(t *testing.T) {
	var gotItems []domain.ItemRequest
	service := newInternalTestService(&stubOrchestrator{
		createFn: func(_ context.Context, items []domain.ItemRequest) (domain.Order, error) {
			gotItems = items
			return sampleOrder(), nil
		},
	})

	resp, err := service.createOrderInternal(context.Background(), &ordersv1.CreateOrderRequest{
		Items: []*ordersv1.OrderItemInput{{ProductId: 1, Qty: 2, PriceMinor: 999}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(gotItems) != 1 || gotItems[0].ProductID != 1 || gotItems[0].Qty != 2 || gotItems[0].PriceMinor != 999 {
		t.Fatalf("unexpected items passed to orchestrator: %+v", gotItems)
	}
	if resp.Order.GetTotalAmountMinor() != 2400 {
		t.Fatalf("unexpected total in response: %d", resp.Order.GetTotalAmountMinor())
	}
}

func TestListOrders_Branches(t *testing.T) {
	service := newInternalTestService(&stubOrchestrator{})

	_, err := service.ListOrders(context.Background(), nil)
	mustStatusCode(t, err, codes.InvalidArgument)

	_, err = service.ListOrders(context.Background(), &ordersv1.ListOrdersRequest{Limit: maxListOrdersLimit + 1})
	mustStatusCode(t, err, codes.InvalidArgument)

	var gotPage domain.Page
	var gotStatus *domain.OrderStatus
	service = newInternalTestService(&stubOrchestrator{
		findAllFn: func(_ context.Context, page domain.Page, status *domain.OrderStatus) (domain.OrderPage, error) {
			gotPage = page
			gotStatus = status
			return domain.OrderPage{
				Data: []domain.Order{sampleOrder()},
				Meta: domain.PageMeta{Total: 1, CurrentPage: 1, LastPage: 1},
			}, nil
		},
	})

	resp, err := service.ListOrders(context.Background(), &ordersv1.ListOrdersRequest{
		Page:         1,
		Limit:        10,
		StatusFilter: ordersv1.OrderStatus_ORDER_STATUS_PENDING,
	})
	if err != nil {
		t.Fatalf("ListOrders returned error: %v", err)
	}
	if gotPage.Number != 1 || gotPage.Limit != 10 {
		t.Fatalf("unexpected page forwarded: %+v", gotPage)
	}
	if gotStatus == nil || *gotStatus != domain.OrderStatusPending {
		t.Fatalf("expected pending filter, got %v", gotStatus)
	}
	if len(resp.Orders) != 1 || resp.Meta.GetTotal() != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	service = newInternalTestService(&stubOrchestrator{
		findAllFn: func(context.Context, domain.Page, *domain.OrderStatus) (domain.OrderPage, error) {
			return domain.OrderPage{}, errors.New("list failed")
		},
	})
	_, err = service.ListOrders(context.Background(), &ordersv1.ListOrdersRequest{})
	mustStatusCode(t, err, codes.Internal)
}

func TestGetOrder_Branches(t *testing.T) {
	service := newInternalTestService(&stubOrchestrator{})

	_, err := service.GetOrder(context.Background(), &ordersv1.GetOrderRequest{})
	mustStatusCode(t, err, codes.InvalidArgument)

	_, err = service.GetOrder(context.Background(), &ordersv1.GetOrderRequest{OrderId: "missing"})
	mustStatusCode(t, err, codes.NotFound)

	service = newInternalTestService(&stubOrchestrator{
		findOneFn: func(context.Context, string) (domain.Order, error) {
			return domain.Order{}, errors.Join(domain.ErrCatalogLookup, errors.New("catalog down"))
		},
	})
	_, err = service.GetOrder(context.Background(), &ordersv1.GetOrderRequest{OrderId: "order-1"})
	mustStatusCode(t, err, codes.Unavailable)

	service = NewOrderService(
		&stubOrchestrator{
			findOneFn: func(context.Context, string) (domain.Order, error) { return sampleOrder(), nil },
		},
		&stubTimelineRepository{
			listFn: func(string) ([]domain.TimelineEvent, error) {
				return []domain.TimelineEvent{{Type: "order.created", Occurred: time.Unix(100, 0).UTC()}}, nil
			},
		},
		nil,
		log.New().WithField("test", "get-order"),
	)
	resp, err := service.GetOrder(context.Background(), &ordersv1.GetOrderRequest{OrderId: "order-1"})
	if err != nil {
		t.Fatalf("GetOrder returned error: %v", err)
	}
	if resp.Order.GetId() != "order-1" {
		t.Fatalf("unexpected order in response: %+v", resp.Order)
	}
	if len(resp.Timeline) != 1 || resp.Timeline[0].GetUnixTime() != 100 {
		t.Fatalf("unexpected timeline: %+v", resp.Timeline)
	}
}

func TestChangeOrderStatusInternal_Branches(t *testing.T) {
	service := newInternalTestService(&stubOrchestrator{})

	_, err := service.changeOrderStatusInternal(context.Background(), &ordersv1.ChangeOrderStatusRequest{
		OrderId: "order-1",
		Status:  ordersv1.OrderStatus_ORDER_STATUS_UNSPECIFIED,
	})
	mustStatusCode(t, err, codes.InvalidArgument)

	service = newInternalTestService(&stubOrchestrator{
		changeStatusFn: func(_ context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
			order := sampleOrder()
			order.ID = id
			order.Status = status
			return order, nil
		},
	})
	resp, err := service.changeOrderStatusInternal(context.Background(), &ordersv1.ChangeOrderStatusRequest{
		OrderId: "order-1",
		Status:  ordersv1.OrderStatus_ORDER_STATUS_DELIVERED,
	})
	if err != nil {
		t.Fatalf("change status failed: %v", err)
	}
	if resp.Order.GetStatus() != ordersv1.OrderStatus_ORDER_STATUS_DELIVERED {
		t.Fatalf("unexpected status in response: %s", resp.Order.GetStatus())
	}

	service = newInternalTestService(&stubOrchestrator{
		changeStatusFn: func(context.Context, string, domain.OrderStatus) (domain.Order, error) {
			return domain.Order{}, domain.ErrOrderNotFound
		},
	})
	_, err = service.changeOrderStatusInternal(context.Background(), &ordersv1.ChangeOrderStatusRequest{
		OrderId: "missing",
		Status:  ordersv1.OrderStatus_ORDER_STATUS_DELIVERED,
	})
	mustStatusCode(t, err, codes.NotFound)
}

func TestCreatePaymentSessionInternal_Branches(t *testing.T) {
	service := newInternalTestService(&stubOrchestrator{
		paymentSessionFn: func(_ context.Context, orderID string) (domain.PaymentSession, error) {
			return domain.PaymentSession{
				ID:  "sess-1",
				URL: "https://payments.example/session/sess-1",
			}, nil
		},
	})

	resp, err := service.createPaymentSessionInternal(context.Background(), &ordersv1.CreatePaymentSessionRequest{OrderId: "order-1"})
	if err != nil {
		t.Fatalf("create payment session failed: %v", err)
	}
	if resp.GetSessionId() != "sess-1" || resp.GetUrl() == "" {
		t.Fatalf("unexpected session response: %+v", resp)
	}

	service = newInternalTestService(&stubOrchestrator{
		paymentSessionFn: func(context.Context, string) (domain.PaymentSession, error) {
			return domain.PaymentSession{}, errors.Join(domain.ErrPaymentSession, errors.New("payments down"))
		},
	})
	_, err = service.createPaymentSessionInternal(context.Background(), &ordersv1.CreatePaymentSessionRequest{OrderId: "order-1"})
	mustStatusCode(t, err, codes.Unavailable)
}

func TestIdempotencyFailureHelpers(t *testing.T) {
	var gotKey string
	var gotPayload []byte
	var gotStatus int

	idem := &stubIdempotencyRepository{
		markFailedFn: func(key string, payload []byte, statusCode int) error {
			gotKey = key
			gotPayload = append([]byte(nil), payload...)
			gotStatus = statusCode
			return nil
		},
	}

	service := NewOrderService(
		&stubOrchestrator{},
		&stubTimelineRepository{},
		idem,
		log.New().WithField("test", "idempotency"),
	)

	service.cacheIdempotencyFailure("idem-1", status.Error(codes.FailedPrecondition, "failed before commit"))
	if gotKey != "idem-1" {
		t.Fatalf("expected key idem-1, got %s", gotKey)
	}
	if gotStatus != int(codes.FailedPrecondition) {
		t.Fatalf("expected code %d, got %d", int(codes.FailedPrecondition), gotStatus)
	}
	if len(gotPayload) == 0 {
		t.Fatal("expected non-empty payload")
	}

	service.idemRepo = &stubIdempotencyRepository{
		markFailedFn: func(string, []byte, int) error { return errors.New("store failed") },
	}
	service.cacheIdempotencyFailure("idem-2", nil)
}

func TestDecodeIdempotencyFailure_Branches(t *testing.T) {
	err := decodeIdempotencyFailure(domain.IdempotencyRecord{
		ResponseBody: []byte(`{"code":3,"message":"payload mismatch"}`),
	})
	mustStatusCode(t, err, codes.InvalidArgument)
	if status.Convert(err).Message() != "payload mismatch" {
		t.Fatalf("unexpected message: %s", status.Convert(err).Message())
	}

	err = decodeIdempotencyFailure(domain.IdempotencyRecord{
		ResponseBody: []byte(`{"code":0,"message":""}`),
	})
	mustStatusCode(t, err, codes.Internal)

	err = decodeIdempotencyFailure(domain.IdempotencyRecord{
		ResponseBody: []byte("broken-json"),
		HTTPStatus:   int(codes.Aborted),
	})
	mustStatusCode(t, err, codes.Aborted)

	err = decodeIdempotencyFailure(domain.IdempotencyRecord{
		ResponseBody: []byte("broken-json"),
		HTTPStatus:   int(codes.OK),
	})
	mustStatusCode(t, err, codes.Internal)
}

func TestUtilityHelpers(t *testing.T) {
	req := &ordersv1.CreateOrderRequest{Items: []*ordersv1.OrderItemInput{{ProductId: 1, Qty: 1}}}
	hash, err := buildIdempotencyRequestHash(grpcMethodCreateOrder, req)
	if err != nil {
		t.Fatalf("build hash failed: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}

	_, err = buildIdempotencyRequestHash(grpcMethodCreateOrder, nil)
	if err == nil {
		t.Fatal("expected error for nil request")
	}

	if toProtoStatus(domain.OrderStatus("something-else")) != ordersv1.OrderStatus_ORDER_STATUS_UNSPECIFIED {
		t.Fatal("unknown status must map to ORDER_STATUS_UNSPECIFIED")
	}
	if _, ok := fromProtoStatus(ordersv1.OrderStatus_ORDER_STATUS_UNSPECIFIED); ok {
		t.Fatal("UNSPECIFIED must not convert to a domain status")
	}
}

func TestToProtoOrder_PaymentFields(t *testing.T) {
	order := sampleOrder()
	paidAt := time.Unix(1700000100, 0).UTC()
	order.Status = domain.OrderStatusPaid
	order.Paid = true
	order.PaidAt = &paidAt
	order.ReceiptURL = "https://receipts.example/r1"

	msg := toProtoOrder(order)
	if !msg.GetPaid() || msg.GetPaidAtUnix() != paidAt.Unix() {
		t.Fatalf("unexpected payment fields: %+v", msg)
	}
	if msg.GetReceiptUrl() != "https://receipts.example/r1" {
		t.Fatalf("unexpected receipt url: %s", msg.GetReceiptUrl())
	}
	if msg.GetStatus() != ordersv1.OrderStatus_ORDER_STATUS_PAID {
		t.Fatalf("unexpected status: %s", msg.GetStatus())
	}
}

func TestBuildTimeline_Branches(t *testing.T) {
	logger := log.New().WithField("test", "timeline")
	service := NewOrderService(&stubOrchestrator{}, nil, nil, logger)

	if got := service.buildTimeline("order-1"); got != nil {
		t.Fatalf("expected nil timeline when repository is nil, got %v", got)
	}

	service.timeline = &stubTimelineRepository{
		listFn: func(string) ([]domain.TimelineEvent, error) { return nil, errors.New("list failed") },
	}
	if got := service.buildTimeline("order-1"); got != nil {
		t.Fatalf("expected nil on timeline list error, got %v", got)
	}
}
