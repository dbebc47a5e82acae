package update_cart_item

import (
	"context"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
)

// CartService интерфейс сервиса корзины
type CartService interface {
	UpdateQuantity(ctx context.Context, sessionID, serviceID string, quantity int) error
	GetCartSummary(sessionID string) domain.CartSummary
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
