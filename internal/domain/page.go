package domain

// Page — параметры страничной выборки: номер страницы начиная с 1 и размер.
type Page struct {
	Number int
	Limit  int
}

// Offset возвращает смещение для хранилища.
func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// PageMeta описывает метаданные страничной выборки.
type PageMeta struct {
	Total       int
	CurrentPage int
	LastPage    int
}

// OrderPage — страница заказов вместе с метаданными.
type OrderPage struct {
	Data []Order
	Meta PageMeta
}

// NewPageMeta вычисляет метаданные: lastPage = ceil(total/limit),
// для пустой выборки lastPage = 0.
func NewPageMeta(total, currentPage, limit int) PageMeta {
	lastPage := 0
	if total > 0 && limit > 0 {
		lastPage = (total + limit - 1) / limit
	}
	return PageMeta{
		Total:       total,
		CurrentPage: currentPage,
		LastPage:    lastPage,
	}
}
