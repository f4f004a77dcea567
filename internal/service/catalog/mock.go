package catalog

import (
	"context"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// MockCatalog — конфигурируемая заглушка ProductCatalog для тестов и dev-режима.
type MockCatalog struct {
	Products []domain.Product
	Err      error

	Calls   int
	LastIDs []int64
}

// NewMockCatalog возвращает mock, отвечающий только по известным товарам.
func NewMockCatalog(products ...domain.Product) *MockCatalog {
	return &MockCatalog{Products: products}
}

// ValidateProducts возвращает настроенные товары, пересечённые с запрошенными id.
func (m *MockCatalog) ValidateProducts(_ context.Context, ids []int64) ([]domain.Product, error) {
	m.Calls++
	m.LastIDs = append([]int64(nil), ids...)

	if m.Err != nil {
		return nil, m.Err
	}

	requested := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		requested[id] = struct{}{}
	}

	result := make([]domain.Product, 0, len(ids))
	for _, p := range m.Products {
		if _, ok := requested[p.ID]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

var _ domain.ProductCatalog = (*MockCatalog)(nil)
