package get_cart

import "github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"

// CartService интерфейс сервиса корзины
type CartService interface {
	GetCartSummary(sessionID string) domain.CartSummary
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
