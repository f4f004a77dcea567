package app

import (
	"github.com/vladislavdragonenkov/orders/internal/service/orders"
)

// createOrchestrator собирает оркестратор жизненного цикла заказов
// из подготовленных зависимостей.
func createOrchestrator(deps *Dependencies, currency string) orders.Orchestrator {
	return orders.NewOrchestrator(
		deps.Repo,
		deps.OutboxRepo,
		deps.TimelineRepo,
		deps.Catalog,
		deps.Payments,
		currency,
		deps.Logger.WithField("layer", "orchestrator"),
	)
}
