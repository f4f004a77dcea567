package domain

import "errors"

var (
	// Ошибка отсутствующего кода валюты.
	ErrCurrencyRequired = errors.New("currency is required")
	// Ошибка отсутствия хотя бы одного товара в заказе.
	ErrItemsRequired = errors.New("order must contain at least one item")
	// Ошибка отрицательной суммы заказа.
	ErrAmountNegative = errors.New("total_amount_minor must be non-negative")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrItemQtyInvalid = errors.New("item qty must be greater than zero")
	// Ошибка, если цена позиции отрицательная.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка при некорректном идентификаторе товара (<= 0).
	ErrProductIDInvalid = errors.New("item product_id must be greater than zero")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrAmountMismatch = errors.New("order amount does not match items sum")
	// Ошибка несоответствия количества позиций и поля total_items.
	ErrTotalItemsMismatch = errors.New("order total_items does not match items sum")
	// Ошибка значения статуса вне закрытого множества.
	ErrStatusInvalid = errors.New("order status is not a known value")
	// Ошибка отсутствующего идентификатора заказа.
	ErrOrderIDRequired = errors.New("order_id is required")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrProductUnresolved — каталог не вернул один из запрошенных товаров.
	ErrProductUnresolved = errors.New("product is not present in catalog response")
	// ErrOrderCreate оборачивает причину неудачного создания заказа
	// (каталог или хранилище); частично созданный заказ невозможен.
	ErrOrderCreate = errors.New("order creation failed")
	// ErrCatalogLookup — обращение к каталогу при обогащении чтения не удалось.
	ErrCatalogLookup = errors.New("catalog lookup failed")
	// ErrPaymentSession — платёжный сервис не создал платёжную сессию.
	ErrPaymentSession = errors.New("payment session creation failed")
	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
	// ErrIdempotencyKeyRequired — пустой idempotency-key.
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	// ErrIdempotencyRequestHashRequired — пустой hash запроса.
	ErrIdempotencyRequestHashRequired = errors.New("idempotency request hash is required")
	// ErrIdempotencyKeyAlreadyExists — ключ уже зарегистрирован.
	ErrIdempotencyKeyAlreadyExists = errors.New("idempotency key already exists")
	// ErrIdempotencyHashMismatch — ключ переиспользован с другим телом запроса.
	ErrIdempotencyHashMismatch = errors.New("idempotency key is used with a different request")
	// ErrIdempotencyKeyNotFound — запись по ключу отсутствует.
	ErrIdempotencyKeyNotFound = errors.New("idempotency key not found")
)

// IsNotFound проверяет, является ли ошибка отсутствием заказа.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound)
}
