package grpcsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/service/orders"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

// OrderService реализует gRPC API поверх оркестратора заказов.
type OrderService struct {
	ordersv1.UnimplementedOrderServiceServer

	orchestrator orders.Orchestrator
	timeline     domain.TimelineRepository
	idemRepo     domain.IdempotencyRepository
	logger       *log.Entry
}

const (
	grpcMethodCreateOrder          = "/orders.v1.OrderService/CreateOrder"
	grpcMethodChangeOrderStatus    = "/orders.v1.OrderService/ChangeOrderStatus"
	grpcMethodCreatePaymentSession = "/orders.v1.OrderService/CreatePaymentSession"

	maxListOrdersLimit = 100
)

// NewOrderService конструирует сервис с зависимостями.
func NewOrderService(
	orchestrator orders.Orchestrator,
	timeline domain.TimelineRepository,
	idemRepo domain.IdempotencyRepository,
	logger *log.Entry,
) *OrderService {
	if logger == nil {
		logger = log.New().WithField("component", "order-service")
	}
	return &OrderService{
		orchestrator: orchestrator,
		timeline:     timeline,
		idemRepo:     idemRepo,
		logger:       logger,
	}
}

// CreateOrder создаёт заказ из позиций, валидированных против каталога.
func (s *OrderService) CreateOrder(ctx context.Context, req *ordersv1.CreateOrderRequest) (*ordersv1.CreateOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodCreateOrder,
		req,
		func() *ordersv1.CreateOrderResponse { return &ordersv1.CreateOrderResponse{} },
		func(ctx context.Context) (*ordersv1.CreateOrderResponse, error) {
			return s.createOrderInternal(ctx, req)
		},
	)
}

func (s *OrderService) createOrderInternal(ctx context.Context, req *ordersv1.CreateOrderRequest) (*ordersv1.CreateOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, status.Error(codes.InvalidArgument, "order must contain at least one item")
	}

	items := make([]domain.ItemRequest, 0, len(req.Items))
	for idx, item := range req.Items {
		if item == nil {
			return nil, status.Errorf(codes.InvalidArgument, "item[%d] is nil", idx)
		}
		if item.ProductId <= 0 {
			return nil, status.Errorf(codes.InvalidArgument, "item[%d].product_id must be > 0", idx)
		}
		if item.Qty <= 0 {
			return nil, status.Errorf(codes.InvalidArgument, "item[%d].qty must be > 0", idx)
		}
		items = append(items, domain.ItemRequest{
			ProductID:  item.ProductId,
			Qty:        item.Qty,
			PriceMinor: item.PriceMinor,
		})
	}

	order, err := s.orchestrator.Create(ctx, items)
	if err != nil {
		s.logger.WithError(err).Error("failed to create order")
		return nil, mapDomainError(err, "failed to create order")
	}

	return &ordersv1.CreateOrderResponse{Order: toProtoOrder(order)}, nil
}

// ListOrders возвращает страницу заказов с метаданными пагинации.
func (s *OrderService) ListOrders(ctx context.Context, req *ordersv1.ListOrdersRequest) (*ordersv1.ListOrdersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Limit > maxListOrdersLimit {
		return nil, status.Errorf(codes.InvalidArgument, "limit must not exceed %d", maxListOrdersLimit)
	}

	var statusFilter *domain.OrderStatus
	if req.StatusFilter != ordersv1.OrderStatus_ORDER_STATUS_UNSPECIFIED {
		converted, ok := fromProtoStatus(req.StatusFilter)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "status_filter is not a known value")
		}
		statusFilter = &converted
	}

	page, err := s.orchestrator.FindAll(ctx, domain.Page{
		Number: int(req.Page),
		Limit:  int(req.Limit),
	}, statusFilter)
	if err != nil {
		s.logger.WithError(err).Error("failed to list orders")
		return nil, mapDomainError(err, "failed to list orders")
	}

	result := make([]*ordersv1.Order, 0, len(page.Data))
	for _, order := range page.Data {
		result = append(result, toProtoOrder(order))
	}

	return &ordersv1.ListOrdersResponse{
		Orders: result,
		Meta: &ordersv1.PageMeta{
			Total:       int32(page.Meta.Total),       //nolint:gosec // totals are bounded by storage size
			CurrentPage: int32(page.Meta.CurrentPage), //nolint:gosec
			LastPage:    int32(page.Meta.LastPage),    //nolint:gosec
		},
	}, nil
}

// GetOrder возвращает заказ, обогащённый именами каталога, и его таймлайн.
func (s *OrderService) GetOrder(ctx context.Context, req *ordersv1.GetOrderRequest) (*ordersv1.GetOrderResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, err := s.orchestrator.FindOne(ctx, req.OrderId)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", req.OrderId).Warn("failed to load order")
		return nil, mapDomainError(err, "failed to load order")
	}

	return &ordersv1.GetOrderResponse{
		Order:    toProtoOrder(order),
		Timeline: s.buildTimeline(req.OrderId),
	}, nil
}

// ChangeOrderStatus переводит заказ в новый статус.
func (s *OrderService) ChangeOrderStatus(ctx context.Context, req *ordersv1.ChangeOrderStatusRequest) (*ordersv1.ChangeOrderStatusResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodChangeOrderStatus,
		req,
		func() *ordersv1.ChangeOrderStatusResponse { return &ordersv1.ChangeOrderStatusResponse{} },
		func(ctx context.Context) (*ordersv1.ChangeOrderStatusResponse, error) {
			return s.changeOrderStatusInternal(ctx, req)
		},
	)
}

func (s *OrderService) changeOrderStatusInternal(ctx context.Context, req *ordersv1.ChangeOrderStatusRequest) (*ordersv1.ChangeOrderStatusResponse, error) {
	newStatus, ok := fromProtoStatus(req.Status)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "status is not a known value")
	}

	order, err := s.orchestrator.ChangeStatus(ctx, req.OrderId, newStatus)
	if err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id": req.OrderId,
			"status":   newStatus,
		}).Warn("failed to change order status")
		return nil, mapDomainError(err, "failed to change order status")
	}

	return &ordersv1.ChangeOrderStatusResponse{Order: toProtoOrder(order)}, nil
}

// CreatePaymentSession запрашивает платёжную сессию у платёжного сервиса.
func (s *OrderService) CreatePaymentSession(ctx context.Context, req *ordersv1.CreatePaymentSessionRequest) (*ordersv1.CreatePaymentSessionResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodCreatePaymentSession,
		req,
		func() *ordersv1.CreatePaymentSessionResponse { return &ordersv1.CreatePaymentSessionResponse{} },
		func(ctx context.Context) (*ordersv1.CreatePaymentSessionResponse, error) {
			return s.createPaymentSessionInternal(ctx, req)
		},
	)
}

func (s *OrderService) createPaymentSessionInternal(ctx context.Context, req *ordersv1.CreatePaymentSessionRequest) (*ordersv1.CreatePaymentSessionResponse, error) {
	session, err := s.orchestrator.CreatePaymentSession(ctx, req.OrderId)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", req.OrderId).Warn("failed to create payment session")
		return nil, mapDomainError(err, "failed to create payment session")
	}

	return &ordersv1.CreatePaymentSessionResponse{
		SessionId:  session.ID,
		Url:        session.URL,
		CancelUrl:  session.CancelURL,
		SuccessUrl: session.SuccessURL,
	}, nil
}

// mapDomainError переводит доменные ошибки в gRPC-статусы.
func mapDomainError(err error, internalMsg string) error {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return status.Error(codes.NotFound, domain.ErrOrderNotFound.Error())
	case errors.Is(err, domain.ErrStatusInvalid),
		errors.Is(err, domain.ErrItemsRequired),
		errors.Is(err, domain.ErrProductIDInvalid),
		errors.Is(err, domain.ErrItemQtyInvalid):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrProductUnresolved):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrCatalogLookup), errors.Is(err, domain.ErrPaymentSession):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, internalMsg)
	}
}

const (
	idempotencyKeyHeader = "idempotency-key"
	idempotencyTTL       = 24 * time.Hour
)

type idempotencyErrorPayload struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

func withIdempotency[T proto.Message](
	s *OrderService,
	ctx context.Context,
	method string,
	req proto.Message,
	newResp func() T,
	handler func(context.Context) (T, error),
) (T, error) {
	var zero T

	if s.idemRepo == nil {
		return handler(ctx)
	}

	idemKey, err := readIdempotencyKey(ctx)
	if err != nil {
		return zero, err
	}

	reqHash, err := buildIdempotencyRequestHash(method, req)
	if err != nil {
		s.logger.WithError(err).WithField("method", method).Warn("failed to build idempotency request hash")
		return zero, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	record, err := s.idemRepo.CreateProcessing(idemKey, reqHash, time.Now().UTC().Add(idempotencyTTL))
	if err != nil {
		return replayIdempotency(s, err, record, newResp)
	}

	resp, runErr := handler(ctx)
	if runErr != nil {
		s.cacheIdempotencyFailure(idemKey, runErr)
		return resp, runErr
	}

	if cacheErr := s.cacheIdempotencySuccess(idemKey, resp); cacheErr != nil {
		s.logger.WithError(cacheErr).WithField("idempotency_key", idemKey).Warn("failed to store idempotent success response")
	}

	return resp, nil
}

func replayIdempotency[T proto.Message](
	s *OrderService,
	createErr error,
	record domain.IdempotencyRecord,
	newResp func() T,
) (T, error) {
	var zero T

	switch {
	case errors.Is(createErr, domain.ErrIdempotencyHashMismatch):
		return zero, status.Error(codes.AlreadyExists, "idempotency key is already used with different request payload")
	case errors.Is(createErr, domain.ErrIdempotencyKeyAlreadyExists):
		switch record.Status {
		case domain.IdempotencyStatusDone:
			if len(record.ResponseBody) == 0 {
				return zero, status.Error(codes.Internal, "idempotency cache is empty")
			}
			resp := newResp()
			if err := protojson.Unmarshal(record.ResponseBody, resp); err != nil {
				s.logger.WithError(err).WithField("idempotency_key", record.Key).Warn("failed to decode cached idempotency response")
				return zero, status.Error(codes.Internal, "failed to decode cached idempotency response")
			}
			return resp, nil
		case domain.IdempotencyStatusProcessing:
			return zero, status.Error(codes.Aborted, "request with the same idempotency key is already processing")
		case domain.IdempotencyStatusFailed:
			return zero, decodeIdempotencyFailure(record)
		default:
			return zero, status.Error(codes.Internal, "unknown idempotency record status")
		}
	default:
		s.logger.WithError(createErr).Warn("failed to create idempotency record")
		return zero, status.Error(codes.Internal, "failed to initialize idempotency request")
	}
}

func (s *OrderService) cacheIdempotencySuccess(key string, resp proto.Message) error {
	if resp == nil {
		return s.idemRepo.MarkDone(key, nil, int(codes.OK))
	}

	data, err := protojson.Marshal(resp)
	if err != nil {
		return err
	}
	return s.idemRepo.MarkDone(key, data, int(codes.OK))
}

func (s *OrderService) cacheIdempotencyFailure(key string, runErr error) {
	st := status.Convert(runErr)
	code := st.Code()
	if code == codes.OK {
		code = codes.Internal
	}

	payload, err := json.Marshal(idempotencyErrorPayload{
		Code:    int32(code), //nolint:gosec // codes.Code is a bounded enum value.
		Message: st.Message(),
	})
	if err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to encode idempotency failure payload")
		payload = nil
	}

	if err := s.idemRepo.MarkFailed(key, payload, int(code)); err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to store idempotency failure response")
	}
}

func decodeIdempotencyFailure(record domain.IdempotencyRecord) error {
	if len(record.ResponseBody) > 0 {
		var payload idempotencyErrorPayload
		if err := json.Unmarshal(record.ResponseBody, &payload); err == nil {
			if code, ok := grpcCodeFromInt32(payload.Code); ok {
				if code == codes.OK {
					code = codes.Internal
				}
				if payload.Message == "" {
					payload.Message = "previous request with the same idempotency key failed"
				}
				return status.Error(code, payload.Message)
			}
		}
	}

	if record.HTTPStatus > 0 {
		if code, ok := grpcCodeFromInt(record.HTTPStatus); ok && code != codes.OK {
			return status.Error(code, "previous request with the same idempotency key failed")
		}
	}

	return status.Error(codes.Internal, "previous request with the same idempotency key failed")
}

func grpcCodeFromInt32(value int32) (codes.Code, bool) {
	if value < int32(codes.OK) || value > int32(codes.Unauthenticated) {
		return codes.Internal, false
	}
	return codes.Code(uint32(value)), true
}

func grpcCodeFromInt(value int) (codes.Code, bool) {
	if value < int(codes.OK) || value > int(codes.Unauthenticated) {
		return codes.Internal, false
	}
	return codes.Code(uint32(value)), true
}

func readIdempotencyKey(ctx context.Context) (string, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(idempotencyKeyHeader)
		if len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			return strings.TrimSpace(values[0]), nil
		}
	}

	if md, ok := metadata.FromOutgoingContext(ctx); ok {
		values := md.Get(idempotencyKeyHeader)
		if len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			return strings.TrimSpace(values[0]), nil
		}
	}

	return "", status.Error(codes.InvalidArgument, "idempotency-key metadata is required")
}

func buildIdempotencyRequestHash(method string, req proto.Message) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is nil")
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(req)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, len(method)+1+len(data))
	payload = append(payload, method...)
	payload = append(payload, ':')
	payload = append(payload, data...)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

func toProtoOrder(order domain.Order) *ordersv1.Order {
	items := make([]*ordersv1.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &ordersv1.OrderItem{
			Id:         item.ID,
			ProductId:  item.ProductID,
			Name:       item.Name,
			Qty:        item.Qty,
			PriceMinor: item.PriceMinor,
		})
	}

	result := &ordersv1.Order{
		Id:               order.ID,
		Status:           toProtoStatus(order.Status),
		Currency:         order.Currency,
		TotalAmountMinor: order.TotalAmountMinor,
		TotalItems:       order.TotalItems,
		Items:            items,
		Paid:             order.Paid,
		ReceiptUrl:       order.ReceiptURL,
		CreatedAtUnix:    order.CreatedAt.Unix(),
		UpdatedAtUnix:    order.UpdatedAt.Unix(),
	}
	if order.PaidAt != nil {
		result.PaidAtUnix = order.PaidAt.Unix()
	}
	return result
}

func toProtoStatus(status domain.OrderStatus) ordersv1.OrderStatus {
	switch status {
	case domain.OrderStatusPending:
		return ordersv1.OrderStatus_ORDER_STATUS_PENDING
	case domain.OrderStatusPaid:
		return ordersv1.OrderStatus_ORDER_STATUS_PAID
	case domain.OrderStatusDelivered:
		return ordersv1.OrderStatus_ORDER_STATUS_DELIVERED
	case domain.OrderStatusCanceled:
		return ordersv1.OrderStatus_ORDER_STATUS_CANCELED
	default:
		return ordersv1.OrderStatus_ORDER_STATUS_UNSPECIFIED
	}
}

func fromProtoStatus(status ordersv1.OrderStatus) (domain.OrderStatus, bool) {
	switch status {
	case ordersv1.OrderStatus_ORDER_STATUS_PENDING:
		return domain.OrderStatusPending, true
	case ordersv1.OrderStatus_ORDER_STATUS_PAID:
		return domain.OrderStatusPaid, true
	case ordersv1.OrderStatus_ORDER_STATUS_DELIVERED:
		return domain.OrderStatusDelivered, true
	case ordersv1.OrderStatus_ORDER_STATUS_CANCELED:
		return domain.OrderStatusCanceled, true
	default:
		return "", false
	}
}

func (s *OrderService) buildTimeline(orderID string) []*ordersv1.TimelineEvent {
	if s.timeline == nil {
		return nil
	}
	events, err := s.timeline.List(orderID)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Warn("failed to list timeline events")
		return nil
	}
	result := make([]*ordersv1.TimelineEvent, 0, len(events))
	for _, event := range events {
		result = append(result, &ordersv1.TimelineEvent{
			Type:     event.Type,
			Reason:   event.Reason,
			UnixTime: event.Occurred.Unix(),
		})
	}
	return result
}
