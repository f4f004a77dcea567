package catalog

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	productsv1 "github.com/vladislavdragonenkov/orders/proto/products/v1"
)

// GRPCCatalog — адаптер к внешнему каталогу товаров поверх gRPC.
type GRPCCatalog struct {
	client productsv1.ProductCatalogClient
}

// NewGRPCCatalog оборачивает сгенерированный gRPC-клиент в доменный порт.
func NewGRPCCatalog(client productsv1.ProductCatalogClient) domain.ProductCatalog {
	return &GRPCCatalog{client: client}
}

// ValidateProducts возвращает снимки товаров по идентификаторам.
// Отсутствие части идентификаторов в ответе ошибкой не считается.
func (c *GRPCCatalog) ValidateProducts(ctx context.Context, ids []int64) ([]domain.Product, error) {
	resp, err := c.client.ValidateProducts(ctx, &productsv1.ValidateProductsRequest{Ids: ids})
	if err != nil {
		return nil, fmt.Errorf("grpc ValidateProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(resp.GetProducts()))
	for _, p := range resp.GetProducts() {
		products = append(products, domain.Product{
			ID:         p.GetId(),
			Name:       p.GetName(),
			PriceMinor: p.GetPriceMinor(),
		})
	}
	return products, nil
}

var _ domain.ProductCatalog = (*GRPCCatalog)(nil)
