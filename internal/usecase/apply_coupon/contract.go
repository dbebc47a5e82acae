package apply_coupon

import (
	"context"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/integrations/cms"
)

// SessionStore интерфейс сессионного хранилища
type SessionStore interface {
	Put(sessionID, key string, value interface{}) error
	Get(sessionID, key string, dest interface{}) bool
	Delete(sessionID, key string)
}

// CMSClient интерфейс клиента CMS для валидации купонов
type CMSClient interface {
	ValidateCoupon(ctx context.Context, code string, amount float64) (*cms.CouponTerms, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
