package remove_cart_item

import "context"

// CartService интерфейс сервиса корзины
type CartService interface {
	RemoveItem(ctx context.Context, sessionID, serviceID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
