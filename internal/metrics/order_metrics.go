package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics содержит метрики операций жизненного цикла заказов.
type OrderMetrics struct {
	// Счётчики операций
	ordersCreated      prometheus.Counter
	orderCreateFailed  prometheus.Counter
	statusChanges      *prometheus.CounterVec
	ordersPaid         prometheus.Counter
	paymentSessions    *prometheus.CounterVec
	catalogLookups     *prometheus.CounterVec
	enrichmentFailures prometheus.Counter

	// Гистограммы времени выполнения
	operationDuration     *prometheus.HistogramVec
	catalogLookupDuration prometheus.Histogram

	// Счётчики событий timeline/outbox
	timelineEvents prometheus.Counter
	outboxEvents   prometheus.Counter
}

// NewOrderMetrics создаёт новый экземпляр метрик заказов.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created",
		}),
		orderCreateFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orders_create_failed_total",
			Help: "Total number of failed order creations",
		}),
		statusChanges: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "orders_status_changes_total",
			Help: "Total number of order status changes grouped by target status",
		}, []string{"status"}),
		ordersPaid: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orders_paid_total",
			Help: "Total number of orders marked as paid",
		}),
		paymentSessions: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "orders_payment_sessions_total",
			Help: "Total number of payment session requests grouped by result",
		}, []string{"result"}),
		catalogLookups: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "orders_catalog_lookups_total",
			Help: "Total number of product catalog lookups grouped by result",
		}, []string{"result"}),
		enrichmentFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orders_enrichment_failures_total",
			Help: "Total number of reads aborted because catalog enrichment failed",
		}),
		operationDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "orders_operation_duration_seconds",
			Help:    "Duration of orchestrator operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		catalogLookupDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "orders_catalog_lookup_duration_seconds",
			Help:    "Duration of product catalog lookups in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}),
		timelineEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orders_timeline_events_total",
			Help: "Total number of timeline events recorded",
		}),
		outboxEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orders_outbox_events_total",
			Help: "Total number of outbox events enqueued",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderCreated увеличивает счётчик созданных заказов.
func (m *OrderMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordOrderCreateFailed увеличивает счётчик неудачных созданий.
func (m *OrderMetrics) RecordOrderCreateFailed() {
	m.orderCreateFailed.Inc()
}

// RecordStatusChange увеличивает счётчик смен статуса.
func (m *OrderMetrics) RecordStatusChange(status string) {
	m.statusChanges.WithLabelValues(status).Inc()
}

// RecordOrderPaid увеличивает счётчик подтверждённых оплат.
func (m *OrderMetrics) RecordOrderPaid() {
	m.ordersPaid.Inc()
}

// RecordPaymentSession фиксирует результат запроса платёжной сессии.
func (m *OrderMetrics) RecordPaymentSession(result string) {
	m.paymentSessions.WithLabelValues(result).Inc()
}

// RecordCatalogLookup фиксирует результат обращения к каталогу.
func (m *OrderMetrics) RecordCatalogLookup(result string, duration time.Duration) {
	m.catalogLookups.WithLabelValues(result).Inc()
	m.catalogLookupDuration.Observe(duration.Seconds())
}

// RecordEnrichmentFailure увеличивает счётчик прерванных обогащений.
func (m *OrderMetrics) RecordEnrichmentFailure() {
	m.enrichmentFailures.Inc()
}

// RecordOperationDuration записывает время выполнения операции оркестратора.
func (m *OrderMetrics) RecordOperationDuration(operation string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordTimelineEvent увеличивает счётчик событий timeline.
func (m *OrderMetrics) RecordTimelineEvent() {
	m.timelineEvents.Inc()
}

// RecordOutboxEvent увеличивает счётчик событий outbox.
func (m *OrderMetrics) RecordOutboxEvent() {
	m.outboxEvents.Inc()
}
