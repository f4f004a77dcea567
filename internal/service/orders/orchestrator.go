package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orders/internal/metrics"
)

const (
	defaultPageLimit = 10
)

// Orchestrator описывает операции жизненного цикла заказа.
type Orchestrator interface {
	// Create валидирует позиции против каталога, считает суммы по ценам
	// каталога и атомарно сохраняет заказ.
	Create(ctx context.Context, items []domain.ItemRequest) (domain.Order, error)
	// FindAll возвращает страницу заказов с метаданными пагинации.
	FindAll(ctx context.Context, page domain.Page, status *domain.OrderStatus) (domain.OrderPage, error)
	// FindOne возвращает заказ, обогащённый актуальными именами из каталога.
	FindOne(ctx context.Context, id string) (domain.Order, error)
	// ChangeStatus переводит заказ в новый статус; повторная установка
	// текущего статуса не пишет в хранилище.
	ChangeStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error)
	// CreatePaymentSession запрашивает платёжную сессию у платёжного сервиса.
	CreatePaymentSession(ctx context.Context, orderID string) (domain.PaymentSession, error)
	// MarkPaid фиксирует подтверждение оплаты. Идемпотентен для уже
	// оплаченных заказов.
	MarkPaid(ctx context.Context, orderID string, paidAt time.Time, receiptURL string) (domain.Order, error)
}

// orchestrator реализует последовательность create → enrich → persist → emit.
type orchestrator struct {
	orders   domain.OrderRepository
	outbox   domain.OutboxRepository
	timeline domain.TimelineRepository
	catalog  domain.ProductCatalog
	payments domain.PaymentProvider
	currency string
	logger   *log.Entry
	metrics  *metrics.OrderMetrics
}

// NewOrchestrator создаёт рабочий экземпляр оркестратора.
func NewOrchestrator(
	orders domain.OrderRepository,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	catalog domain.ProductCatalog,
	payments domain.PaymentProvider,
	currency string,
	logger *log.Entry,
) Orchestrator {
	if logger == nil {
		logger = log.New().WithField("component", "orders")
	}
	if currency == "" {
		currency = "usd"
	}
	return &orchestrator{
		orders:   orders,
		outbox:   outbox,
		timeline: timeline,
		catalog:  catalog,
		payments: payments,
		currency: currency,
		logger:   logger,
		metrics:  metrics.NewOrderMetrics(),
	}
}

// NewOrchestratorWithoutMetrics создаёт оркестратор без метрик (для тестов).
func NewOrchestratorWithoutMetrics(
	orders domain.OrderRepository,
	outbox domain.OutboxRepository,
	timeline domain.TimelineRepository,
	catalog domain.ProductCatalog,
	payments domain.PaymentProvider,
	currency string,
	logger *log.Entry,
) Orchestrator {
	if logger == nil {
		logger = log.New().WithField("component", "orders")
	}
	if currency == "" {
		currency = "usd"
	}
	return &orchestrator{
		orders:   orders,
		outbox:   outbox,
		timeline: timeline,
		catalog:  catalog,
		payments: payments,
		currency: currency,
		logger:   logger,
		metrics:  nil, // Отключаем метрики для тестов
	}
}

// Create собирает заказ из позиций, валидируя их против каталога товаров.
// Цены каталога являются источником истины: заявленные в запросе цены
// используются только как входной контекст и в суммы не попадают.
func (o *orchestrator) Create(ctx context.Context, items []domain.ItemRequest) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if o.metrics != nil {
			o.metrics.RecordOperationDuration("create", time.Since(start))
		}
	}()

	if len(items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: %w", domain.ErrOrderCreate, domain.ErrItemsRequired)
	}
	for _, item := range items {
		if item.ProductID <= 0 {
			return domain.Order{}, fmt.Errorf("%w: %w", domain.ErrOrderCreate, domain.ErrProductIDInvalid)
		}
		if item.Qty <= 0 {
			return domain.Order{}, fmt.Errorf("%w: %w", domain.ErrOrderCreate, domain.ErrItemQtyInvalid)
		}
	}

	ids := distinctProductIDs(items)
	products, err := o.lookupProducts(ctx, ids)
	if err != nil {
		o.recordCreateFailed()
		return domain.Order{}, fmt.Errorf("%w: validate products: %w", domain.ErrOrderCreate, err)
	}

	index := domain.ProductIndex(products)
	for _, id := range ids {
		if _, ok := index[id]; !ok {
			o.recordCreateFailed()
			return domain.Order{}, fmt.Errorf("%w: %w: product %d", domain.ErrOrderCreate, domain.ErrProductUnresolved, id)
		}
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:        uuid.NewString(),
		Status:    domain.OrderStatusPending,
		Currency:  o.currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, item := range items {
		product := index[item.ProductID]
		order.Items = append(order.Items, domain.OrderItem{
			ID:         uuid.NewString(),
			ProductID:  item.ProductID,
			Name:       product.Name,
			Qty:        item.Qty,
			PriceMinor: product.PriceMinor,
			CreatedAt:  now,
		})
		order.TotalAmountMinor += product.PriceMinor * int64(item.Qty)
		order.TotalItems += item.Qty
	}

	if err := o.orders.Create(ctx, order); err != nil {
		o.recordCreateFailed()
		return domain.Order{}, fmt.Errorf("%w: %w", domain.ErrOrderCreate, err)
	}

	if o.metrics != nil {
		o.metrics.RecordOrderCreated()
	}
	o.emitEvent(&order, kafka.EventTypeOrderCreated, "")
	o.logger.WithFields(log.Fields{
		"order_id":     order.ID,
		"total_amount": order.TotalAmountMinor,
		"total_items":  order.TotalItems,
	}).Info("order created")

	return order, nil
}

// FindAll возвращает страницу заказов в стабильном порядке без обогащения.
func (o *orchestrator) FindAll(ctx context.Context, page domain.Page, status *domain.OrderStatus) (domain.OrderPage, error) {
	start := time.Now()
	defer func() {
		if o.metrics != nil {
			o.metrics.RecordOperationDuration("find_all", time.Since(start))
		}
	}()

	if page.Number < 1 {
		page.Number = 1
	}
	if page.Limit < 1 {
		page.Limit = defaultPageLimit
	}

	filter := domain.OrderFilter{Status: status}
	total, err := o.orders.Count(ctx, filter)
	if err != nil {
		return domain.OrderPage{}, fmt.Errorf("count orders: %w", err)
	}

	data, err := o.orders.List(ctx, filter, page.Offset(), page.Limit)
	if err != nil {
		return domain.OrderPage{}, fmt.Errorf("list orders: %w", err)
	}

	return domain.OrderPage{
		Data: data,
		Meta: domain.NewPageMeta(total, page.Number, page.Limit),
	}, nil
}

// FindOne читает заказ и накладывает актуальные имена товаров из каталога.
// Цены в позициях остаются снимками момента создания.
func (o *orchestrator) FindOne(ctx context.Context, id string) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if o.metrics != nil {
			o.metrics.RecordOperationDuration("find_one", time.Since(start))
		}
	}()

	order, err := o.orders.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	products, err := o.lookupProducts(ctx, order.ProductIDs())
	if err != nil {
		if o.metrics != nil {
			o.metrics.RecordEnrichmentFailure()
		}
		return domain.Order{}, fmt.Errorf("%w: %w", domain.ErrCatalogLookup, err)
	}

	index := domain.ProductIndex(products)
	for i := range order.Items {
		// Нерезолвящийся товар оставляет имя пустым; позиция не исчезает.
		order.Items[i].Name = index[order.Items[i].ProductID].Name
	}

	return order, nil
}

// ChangeStatus переводит заказ в новый статус. Если заказ уже в целевом
// статусе, возвращается обогащённая версия без записи в хранилище; иначе
// возвращается сырая строка хранилища после обновления.
func (o *orchestrator) ChangeStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if o.metrics != nil {
			o.metrics.RecordOperationDuration("change_status", time.Since(start))
		}
	}()

	if !status.Valid() {
		return domain.Order{}, domain.ErrStatusInvalid
	}

	order, err := o.FindOne(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	if order.Status == status {
		return order, nil
	}

	updated, err := o.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order status: %w", err)
	}

	if o.metrics != nil {
		o.metrics.RecordStatusChange(string(status))
	}
	o.emitEvent(&updated, kafka.EventTypeOrderStatusChanged, "")
	o.logger.WithFields(log.Fields{
		"order_id": updated.ID,
		"status":   updated.Status,
	}).Info("order status changed")

	return updated, nil
}

// CreatePaymentSession собирает платёжный payload из снимков позиций заказа.
func (o *orchestrator) CreatePaymentSession(ctx context.Context, orderID string) (domain.PaymentSession, error) {
	start := time.Now()
	defer func() {
		if o.metrics != nil {
			o.metrics.RecordOperationDuration("create_payment_session", time.Since(start))
		}
	}()

	order, err := o.orders.Get(ctx, orderID)
	if err != nil {
		return domain.PaymentSession{}, err
	}

	req := domain.PaymentSessionRequest{
		OrderID:  order.ID,
		Currency: order.Currency,
		Items:    make([]domain.PaymentLineItem, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		req.Items = append(req.Items, domain.PaymentLineItem{
			Name:       item.Name,
			PriceMinor: item.PriceMinor,
			Qty:        item.Qty,
		})
	}

	session, err := o.payments.CreateSession(ctx, req)
	if err != nil {
		if o.metrics != nil {
			o.metrics.RecordPaymentSession("error")
		}
		return domain.PaymentSession{}, fmt.Errorf("%w: %w", domain.ErrPaymentSession, err)
	}

	if o.metrics != nil {
		o.metrics.RecordPaymentSession("ok")
	}
	o.logger.WithFields(log.Fields{
		"order_id":   order.ID,
		"session_id": session.ID,
	}).Info("payment session created")

	return session, nil
}

// MarkPaid фиксирует оплату, подтверждённую платёжным сервисом.
func (o *orchestrator) MarkPaid(ctx context.Context, orderID string, paidAt time.Time, receiptURL string) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if o.metrics != nil {
			o.metrics.RecordOperationDuration("mark_paid", time.Since(start))
		}
	}()

	order, err := o.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Paid {
		o.logger.WithField("order_id", order.ID).Debug("order already paid, skipping")
		return order, nil
	}

	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	updated, err := o.orders.MarkPaid(ctx, orderID, paidAt, receiptURL)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mark order paid: %w", err)
	}

	if o.metrics != nil {
		o.metrics.RecordOrderPaid()
	}
	o.emitEvent(&updated, kafka.EventTypeOrderPaid, "payment confirmed")
	o.logger.WithFields(log.Fields{
		"order_id":    updated.ID,
		"receipt_url": updated.ReceiptURL,
	}).Info("order marked as paid")

	return updated, nil
}

func (o *orchestrator) lookupProducts(ctx context.Context, ids []int64) ([]domain.Product, error) {
	start := time.Now()
	products, err := o.catalog.ValidateProducts(ctx, ids)
	if o.metrics != nil {
		result := "ok"
		if err != nil {
			result = "error"
		}
		o.metrics.RecordCatalogLookup(result, time.Since(start))
	}
	return products, err
}

// emitEvent пишет событие в transactional outbox и timeline заказа.
// Ошибки публикации не прерывают основную операцию.
func (o *orchestrator) emitEvent(order *domain.Order, eventType kafka.EventType, reason string) {
	event := kafka.NewOrderEvent(eventType, order.ID, string(order.Status), order.Currency, order.TotalAmountMinor, nil)
	payload, err := json.Marshal(event)
	if err != nil {
		o.logger.WithError(err).WithFields(log.Fields{
			"order_id": order.ID,
			"event":    eventType,
		}).Error("marshal event failed")
		return
	}

	msg := domain.OutboxMessage{
		AggregateType: "order",
		AggregateID:   order.ID,
		EventType:     string(eventType),
		Payload:       payload,
	}
	if _, err := o.outbox.Enqueue(msg); err != nil {
		o.logger.WithError(err).WithFields(log.Fields{
			"order_id": order.ID,
			"event":    eventType,
		}).Error("enqueue event failed")
	} else if o.metrics != nil {
		o.metrics.RecordOutboxEvent()
	}

	if o.timeline != nil {
		timelineEvent := domain.TimelineEvent{
			OrderID:  order.ID,
			Type:     string(eventType),
			Reason:   reason,
			Occurred: time.Now().UTC(),
		}
		if err := o.timeline.Append(timelineEvent); err != nil {
			o.logger.WithError(err).WithFields(log.Fields{
				"order_id": order.ID,
				"event":    eventType,
			}).Warn("append timeline event failed")
		} else if o.metrics != nil {
			o.metrics.RecordTimelineEvent()
		}
	}
}

func (o *orchestrator) recordCreateFailed() {
	if o.metrics != nil {
		o.metrics.RecordOrderCreateFailed()
	}
}

func distinctProductIDs(items []domain.ItemRequest) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

var _ Orchestrator = (*orchestrator)(nil)
