package clear_cart

import "context"

// CartService интерфейс сервиса корзины
type CartService interface {
	ClearCart(ctx context.Context, sessionID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
