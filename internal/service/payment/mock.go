package payment

import (
	"context"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// MockProvider — конфигурируемая заглушка PaymentProvider для тестов.
type MockProvider struct {
	Session domain.PaymentSession
	Err     error

	Calls   int
	LastReq domain.PaymentSessionRequest
}

// NewMockProvider возвращает mock с успешным сценарием по умолчанию.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Session: domain.PaymentSession{
			ID:         "sess-mock",
			URL:        "https://payments.example/session/sess-mock",
			CancelURL:  "https://payments.example/cancel",
			SuccessURL: "https://payments.example/success",
		},
	}
}

// CreateSession возвращает настроенный результат и запоминает запрос.
func (m *MockProvider) CreateSession(_ context.Context, req domain.PaymentSessionRequest) (domain.PaymentSession, error) {
	m.Calls++
	m.LastReq = req
	if m.Err != nil {
		return domain.PaymentSession{}, m.Err
	}
	return m.Session, nil
}

var _ domain.PaymentProvider = (*MockProvider)(nil)
