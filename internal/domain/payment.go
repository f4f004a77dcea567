package domain

// PaymentLineItem — позиция в запросе на платёжную сессию.
type PaymentLineItem struct {
	Name       string
	PriceMinor int64
	Qty        int32
}

// PaymentSessionRequest — payload для платёжного сервиса: заказ, валюта
// расчёта и разбивка по позициям.
type PaymentSessionRequest struct {
	OrderID  string
	Currency string
	Items    []PaymentLineItem
}

// PaymentSession — непрозрачный результат платёжного сервиса; возвращается
// вызывающему без изменений.
type PaymentSession struct {
	ID         string
	URL        string
	CancelURL  string
	SuccessURL string
}

// Validate проверяет корректность запроса платёжной сессии.
func (r *PaymentSessionRequest) Validate() []error {
	var errs []error

	if r.OrderID == "" {
		errs = append(errs, ErrOrderIDRequired)
	}
	if r.Currency == "" {
		errs = append(errs, ErrCurrencyRequired)
	}
	if len(r.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}
	for _, item := range r.Items {
		if item.Qty <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.PriceMinor < 0 {
			errs = append(errs, ErrItemPriceInvalid)
		}
	}

	return errs
}
