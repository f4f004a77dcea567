package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/service/catalog"
	"github.com/vladislavdragonenkov/orders/internal/service/payment"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Repo            domain.OrderRepository
	OutboxRepo      domain.OutboxRepository
	TimelineRepo    domain.TimelineRepository
	IdempotencyRepo domain.IdempotencyRepository
	Catalog         domain.ProductCatalog
	Payments        domain.PaymentProvider
	Logger          *log.Entry
}

// NewDependencies создаёт in-memory зависимости с mock-интеграциями.
// Подходит для разработки и тестов; в production каталог и платежи
// заменяются на gRPC-клиенты внешних сервисов.
func NewDependencies(logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	return &Dependencies{
		Repo:            memory.NewOrderRepository(),
		OutboxRepo:      memory.NewOutboxRepository(),
		TimelineRepo:    memory.NewTimelineRepository(),
		IdempotencyRepo: memory.NewIdempotencyRepository(),
		Catalog: catalog.NewMockCatalog(
			domain.Product{ID: 1, Name: "Widget", PriceMinor: 1200},
			domain.Product{ID: 2, Name: "Gadget", PriceMinor: 500},
		),
		Payments: payment.NewMockProvider(),
		Logger:   logger,
	}
}
