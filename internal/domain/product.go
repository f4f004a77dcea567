package domain

// Product — снимок данных товара из внешнего каталога: идентификатор,
// актуальное название и актуальная цена в минимальных единицах.
type Product struct {
	ID         int64
	Name       string
	PriceMinor int64
}

// ProductIndex строит индекс товаров по идентификатору для быстрых выборок.
func ProductIndex(products []Product) map[int64]Product {
	index := make(map[int64]Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}
