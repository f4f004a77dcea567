package domain

import "time"

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан, оплата ещё не подтверждена.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusPaid — оплата подтверждена платёжным сервисом.
	OrderStatusPaid OrderStatus = "paid"
	// OrderStatusDelivered — заказ доставлен покупателю.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCanceled — заказ отменён до завершения цикла.
	OrderStatusCanceled OrderStatus = "canceled"
)

// Valid проверяет, что статус относится к закрытому множеству значений.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusDelivered, OrderStatusCanceled:
		return true
	default:
		return false
	}
}

// OrderItem представляет одну позицию заказа.
type OrderItem struct {
	// ID позиции нужен для однозначной идентификации и аудита.
	ID string
	// ProductID — идентификатор товара во внешнем каталоге; локальный FK не ведётся.
	ProductID int64
	// Name — снимок названия товара на момент создания заказа.
	Name string
	// Qty — количество единиц товара.
	Qty int32
	// PriceMinor — снимок цены каталога на момент создания заказа,
	// в минимальных денежных единицах. Намеренно не синхронизируется
	// с последующими изменениями цен в каталоге.
	PriceMinor int64
	// CreatedAt фиксирует момент добавления позиции в заказ.
	CreatedAt time.Time
}

// Order агрегирует состояние заказа и его позиции.
type Order struct {
	ID       string
	Status   OrderStatus
	Currency string
	// TotalAmountMinor — производная сумма Σ qty*price, вычисляется ровно один
	// раз при создании и дальше читается как есть.
	TotalAmountMinor int64
	// TotalItems — производная сумма Σ qty.
	TotalItems int32
	Items      []OrderItem
	// Paid/PaidAt/ReceiptURL выставляются обработчиком подтверждения оплаты.
	Paid       bool
	PaidAt     *time.Time
	ReceiptURL string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ItemRequest — входная позиция при создании заказа. Цена здесь — заявленная
// клиентом и используется только на валидационной границе; итоги считаются
// по ценам каталога.
type ItemRequest struct {
	ProductID  int64
	Qty        int32
	PriceMinor int64
}

// OrderFilter ограничивает выборку заказов.
type OrderFilter struct {
	Status *OrderStatus
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.Currency == "" {
		errs = append(errs, ErrCurrencyRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}
	if o.TotalAmountMinor < 0 {
		errs = append(errs, ErrAmountNegative)
	}
	if !o.Status.Valid() {
		errs = append(errs, ErrStatusInvalid)
	}

	// Сверяем производные итоги с позициями: Σ qty*price и Σ qty.
	var amount int64
	var count int32
	for _, item := range o.Items {
		if item.ProductID <= 0 {
			errs = append(errs, ErrProductIDInvalid)
		}
		if item.Qty <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.PriceMinor < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
		amount += int64(item.Qty) * item.PriceMinor
		count += item.Qty
	}
	if amount != o.TotalAmountMinor {
		errs = append(errs, ErrAmountMismatch)
	}
	if count != o.TotalItems {
		errs = append(errs, ErrTotalItemsMismatch)
	}

	return errs
}

// ProductIDs возвращает уникальные идентификаторы товаров из позиций заказа.
func (o *Order) ProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(o.Items))
	ids := make([]int64, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
