package integration

import (
	"context"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/orders/internal/service/grpc"
	"github.com/vladislavdragonenkov/orders/internal/service/orders"
	"github.com/vladislavdragonenkov/orders/internal/service/payment"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

// OrderLifecycleTestSuite тестирует полный жизненный цикл заказа через gRPC API:
// создание по каталогу, платёжную сессию, подтверждение оплаты и доставку.
type OrderLifecycleTestSuite struct {
	suite.Suite
	service      *grpcsvc.OrderService
	repo         domain.OrderRepository
	timeline     domain.TimelineRepository
	catalog      *catalog.MockCatalog
	payments     *payment.MockProvider
	orchestrator orders.Orchestrator
}

func (suite *OrderLifecycleTestSuite) SetupTest() {
	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel) // Уменьшаем шум в тестах
	logger := baseLogger.WithField("component", "integration-test")

	suite.repo = memory.NewOrderRepository()
	suite.timeline = memory.NewTimelineRepository()
	outbox := memory.NewOutboxRepository()
	idempotency := memory.NewIdempotencyRepository()

	suite.catalog = catalog.NewMockCatalog(
		domain.Product{ID: 1, Name: "Laptop Pro", PriceMinor: 199900},
		domain.Product{ID: 2, Name: "Wireless Mouse", PriceMinor: 4999},
	)
	suite.payments = payment.NewMockProvider()

	suite.orchestrator = orders.NewOrchestratorWithoutMetrics(
		suite.repo,
		outbox,
		suite.timeline,
		suite.catalog,
		suite.payments,
		"usd",
		logger,
	)

	suite.service = grpcsvc.NewOrderService(
		suite.orchestrator,
		suite.timeline,
		idempotency,
		logger,
	)
}

// idemCtx имитирует входящий gRPC-запрос с ключом идемпотентности.
func (suite *OrderLifecycleTestSuite) idemCtx(key string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("idempotency-key", key))
}

func (suite *OrderLifecycleTestSuite) TestSuccessfulOrderLifecycle() {
	ctx := context.Background()

	// 1. Создаём заказ. Заявленные клиентом цены игнорируются: каталог важнее.
	createResp, err := suite.service.CreateOrder(suite.idemCtx("lifecycle-create"), &ordersv1.CreateOrderRequest{
		Items: []*ordersv1.OrderItemInput{
			{ProductId: 1, Qty: 1, PriceMinor: 1},
			{ProductId: 2, Qty: 2, PriceMinor: 1},
		},
	})
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), createResp.Order)
	require.Equal(suite.T(), ordersv1.OrderStatus_ORDER_STATUS_PENDING, createResp.Order.Status)
	require.Equal(suite.T(), int64(209898), createResp.Order.TotalAmountMinor) // $1999 + 2*$49.99
	require.Equal(suite.T(), int32(3), createResp.Order.TotalItems)

	orderID := createResp.Order.Id

	// 2. Запрашиваем платёжную сессию.
	sessionResp, err := suite.service.CreatePaymentSession(suite.idemCtx("lifecycle-session"), &ordersv1.CreatePaymentSessionRequest{
		OrderId: orderID,
	})
	require.NoError(suite.T(), err)
	require.NotEmpty(suite.T(), sessionResp.SessionId)
	require.NotEmpty(suite.T(), sessionResp.Url)

	require.Equal(suite.T(), 1, suite.payments.Calls)
	require.Equal(suite.T(), orderID, suite.payments.LastReq.OrderID)
	require.Equal(suite.T(), "usd", suite.payments.LastReq.Currency)
	require.Len(suite.T(), suite.payments.LastReq.Items, 2)

	// 3. Платёжный сервис подтверждает оплату событием payments.payment.succeeded;
	// здесь воспроизводим то, что делает Kafka-консьюмер при его получении.
	paidAt := time.Now().UTC()
	_, err = suite.orchestrator.MarkPaid(ctx, orderID, paidAt, "https://payments.example/receipt/1")
	require.NoError(suite.T(), err)

	// 4. Проверяем финальное состояние вместе с timeline.
	getResp, err := suite.service.GetOrder(ctx, &ordersv1.GetOrderRequest{OrderId: orderID})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), ordersv1.OrderStatus_ORDER_STATUS_PAID, getResp.Order.Status)
	require.True(suite.T(), getResp.Order.Paid)
	require.Equal(suite.T(), "https://payments.example/receipt/1", getResp.Order.ReceiptUrl)
	require.Equal(suite.T(), "Laptop Pro", getResp.Order.Items[0].Name)

	var eventTypes []string
	for _, event := range getResp.Timeline {
		eventTypes = append(eventTypes, event.Type)
	}
	require.Contains(suite.T(), eventTypes, "order.created")
	require.Contains(suite.T(), eventTypes, "order.paid")

	// 5. После доставки заказ переходит в терминальный статус.
	changeResp, err := suite.service.ChangeOrderStatus(suite.idemCtx("lifecycle-deliver"), &ordersv1.ChangeOrderStatusRequest{
		OrderId: orderID,
		Status:  ordersv1.OrderStatus_ORDER_STATUS_DELIVERED,
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), ordersv1.OrderStatus_ORDER_STATUS_DELIVERED, changeResp.Order.Status)

	stored, err := suite.repo.Get(ctx, orderID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), domain.OrderStatusDelivered, stored.Status)
	require.True(suite.T(), stored.Paid)
}

func (suite *OrderLifecycleTestSuite) TestCreateOrderIdempotentReplay() {
	req := &ordersv1.CreateOrderRequest{
		Items: []*ordersv1.OrderItemInput{{ProductId: 1, Qty: 1}},
	}

	first, err := suite.service.CreateOrder(suite.idemCtx("replay-key"), req)
	require.NoError(suite.T(), err)

	second, err := suite.service.CreateOrder(suite.idemCtx("replay-key"), req)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), first.Order.Id, second.Order.Id)

	// Повтор не создаёт второй заказ.
	total, err := suite.repo.Count(context.Background(), domain.OrderFilter{})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 1, total)
}

func (suite *OrderLifecycleTestSuite) TestUnknownProductRejectsOrder() {
	_, err := suite.service.CreateOrder(suite.idemCtx("unknown-product"), &ordersv1.CreateOrderRequest{
		Items: []*ordersv1.OrderItemInput{
			{ProductId: 1, Qty: 1},
			{ProductId: 404, Qty: 1},
		},
	})
	require.Error(suite.T(), err)
	require.Equal(suite.T(), codes.FailedPrecondition, status.Code(err))

	// Заказ не должен быть частично сохранён.
	total, err := suite.repo.Count(context.Background(), domain.OrderFilter{})
	require.NoError(suite.T(), err)
	require.Zero(suite.T(), total)
}

func (suite *OrderLifecycleTestSuite) TestPaymentProviderFailure() {
	createResp, err := suite.service.CreateOrder(suite.idemCtx("payment-fail-create"), &ordersv1.CreateOrderRequest{
		Items: []*ordersv1.OrderItemInput{{ProductId: 2, Qty: 1}},
	})
	require.NoError(suite.T(), err)

	suite.payments.Err = domain.ErrPaymentSession
	_, err = suite.service.CreatePaymentSession(suite.idemCtx("payment-fail-session"), &ordersv1.CreatePaymentSessionRequest{
		OrderId: createResp.Order.Id,
	})
	require.Error(suite.T(), err)
	require.Equal(suite.T(), codes.Unavailable, status.Code(err))

	// Сбой платёжного сервиса не трогает состояние заказа.
	stored, err := suite.repo.Get(context.Background(), createResp.Order.Id)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), domain.OrderStatusPending, stored.Status)
	require.False(suite.T(), stored.Paid)
}

func (suite *OrderLifecycleTestSuite) TestRepeatedPaymentConfirmationIsIdempotent() {
	ctx := context.Background()

	createResp, err := suite.service.CreateOrder(suite.idemCtx("double-paid"), &ordersv1.CreateOrderRequest{
		Items: []*ordersv1.OrderItemInput{{ProductId: 1, Qty: 1}},
	})
	require.NoError(suite.T(), err)
	orderID := createResp.Order.Id

	paidAt := time.Now().UTC()
	_, err = suite.orchestrator.MarkPaid(ctx, orderID, paidAt, "https://payments.example/receipt/first")
	require.NoError(suite.T(), err)

	// Дубликат события оплаты не перезаписывает квитанцию.
	_, err = suite.orchestrator.MarkPaid(ctx, orderID, paidAt.Add(time.Hour), "https://payments.example/receipt/second")
	require.NoError(suite.T(), err)

	stored, err := suite.repo.Get(ctx, orderID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "https://payments.example/receipt/first", stored.ReceiptURL)

	paidEvents := 0
	events, err := suite.timeline.List(orderID)
	require.NoError(suite.T(), err)
	for _, event := range events {
		if event.Type == "order.paid" {
			paidEvents++
		}
	}
	require.Equal(suite.T(), 1, paidEvents)
}

func (suite *OrderLifecycleTestSuite) TestListOrdersPagination() {
	for i := 0; i < 5; i++ {
		_, err := suite.service.CreateOrder(suite.idemCtx("page-"+string(rune('a'+i))), &ordersv1.CreateOrderRequest{
			Items: []*ordersv1.OrderItemInput{{ProductId: 2, Qty: 1}},
		})
		require.NoError(suite.T(), err)
	}

	resp, err := suite.service.ListOrders(context.Background(), &ordersv1.ListOrdersRequest{Page: 2, Limit: 2})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Orders, 2)
	require.Equal(suite.T(), int32(5), resp.Meta.Total)
	require.Equal(suite.T(), int32(2), resp.Meta.CurrentPage)
	require.Equal(suite.T(), int32(3), resp.Meta.LastPage)

	// Фильтр по статусу без совпадений даёт пустую страницу.
	filtered, err := suite.service.ListOrders(context.Background(), &ordersv1.ListOrdersRequest{
		Page:         1,
		Limit:        10,
		StatusFilter: ordersv1.OrderStatus_ORDER_STATUS_DELIVERED,
	})
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), filtered.Orders)
	require.Equal(suite.T(), int32(0), filtered.Meta.Total)
}

func TestOrderLifecycle(t *testing.T) {
	suite.Run(t, new(OrderLifecycleTestSuite))
}
