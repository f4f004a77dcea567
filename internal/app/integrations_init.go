package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/service/catalog"
	"github.com/vladislavdragonenkov/orders/internal/service/payment"
	paymentsv1 "github.com/vladislavdragonenkov/orders/proto/payments/v1"
	productsv1 "github.com/vladislavdragonenkov/orders/proto/products/v1"
)

// integrations — клиенты внешних сервисов и функция их закрытия.
type integrations struct {
	catalog  domain.ProductCatalog
	payments domain.PaymentProvider
	closeFn  func()
}

// initIntegrations подключает каталог и платёжный сервис по gRPC.
// Если адреса не заданы и разрешены mock-интеграции, используются заглушки.
func initIntegrations(cfg Config, logger *log.Entry) (integrations, error) {
	result := integrations{closeFn: func() {}}
	var conns []*grpc.ClientConn

	closeAll := func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}

	if cfg.ProductsGRPCAddr != "" {
		conn, err := grpc.NewClient(cfg.ProductsGRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			closeAll()
			return integrations{}, fmt.Errorf("connect product catalog: %w", err)
		}
		conns = append(conns, conn)
		result.catalog = catalog.NewGRPCCatalog(productsv1.NewProductCatalogClient(conn))
		logger.WithField("addr", cfg.ProductsGRPCAddr).Info("product catalog client initialized")
	}

	if cfg.PaymentsGRPCAddr != "" {
		conn, err := grpc.NewClient(cfg.PaymentsGRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			closeAll()
			return integrations{}, fmt.Errorf("connect payment service: %w", err)
		}
		conns = append(conns, conn)
		result.payments = payment.NewGRPCProvider(paymentsv1.NewPaymentServiceClient(conn))
		logger.WithField("addr", cfg.PaymentsGRPCAddr).Info("payment service client initialized")
	}

	if result.catalog == nil {
		if !cfg.AllowMockIntegrations {
			closeAll()
			return integrations{}, fmt.Errorf("product catalog address is required")
		}
		result.catalog = catalog.NewMockCatalog(
			domain.Product{ID: 1, Name: "Widget", PriceMinor: 1200},
			domain.Product{ID: 2, Name: "Gadget", PriceMinor: 500},
		)
		logger.Warn("using mock product catalog")
	}

	if result.payments == nil {
		if !cfg.AllowMockIntegrations {
			closeAll()
			return integrations{}, fmt.Errorf("payment service address is required")
		}
		result.payments = payment.NewMockProvider()
		logger.Warn("using mock payment provider")
	}

	result.closeFn = closeAll
	return result, nil
}
