package checkout

import (
	"context"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/integrations/payment"
)

// CartService интерфейс сервиса корзины
type CartService interface {
	GetCheckoutData(sessionID string) domain.CheckoutData
}

// PaymentClient интерфейс клиента платежного шлюза
type PaymentClient interface {
	Currency() string
	CreateOrder(ctx context.Context, amountMinor int64, receipt string, notes map[string]string) (*payment.Order, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
