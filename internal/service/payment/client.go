package payment

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	paymentsv1 "github.com/vladislavdragonenkov/orders/proto/payments/v1"
)

// GRPCProvider — адаптер к платёжному сервису поверх gRPC.
type GRPCProvider struct {
	client paymentsv1.PaymentServiceClient
}

// NewGRPCProvider оборачивает сгенерированный gRPC-клиент в доменный порт.
func NewGRPCProvider(client paymentsv1.PaymentServiceClient) domain.PaymentProvider {
	return &GRPCProvider{client: client}
}

// CreateSession запрашивает платёжную сессию для заказа.
func (p *GRPCProvider) CreateSession(ctx context.Context, req domain.PaymentSessionRequest) (domain.PaymentSession, error) {
	items := make([]*paymentsv1.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, &paymentsv1.LineItem{
			Name:       item.Name,
			PriceMinor: item.PriceMinor,
			Qty:        item.Qty,
		})
	}

	resp, err := p.client.CreateSession(ctx, &paymentsv1.CreateSessionRequest{
		OrderId:  req.OrderID,
		Currency: req.Currency,
		Items:    items,
	})
	if err != nil {
		return domain.PaymentSession{}, fmt.Errorf("grpc CreateSession: %w", err)
	}

	return domain.PaymentSession{
		ID:         resp.GetSessionId(),
		URL:        resp.GetUrl(),
		CancelURL:  resp.GetCancelUrl(),
		SuccessURL: resp.GetSuccessUrl(),
	}, nil
}

var _ domain.PaymentProvider = (*GRPCProvider)(nil)
