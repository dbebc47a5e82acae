package create_express_lead

import (
	"context"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/integrations/cms"
)

// PricingService интерфейс резолвера цен
type PricingService interface {
	ResolvePricing(vehicle domain.Vehicle) (*domain.PricingData, error)
}

// SessionStore интерфейс сессионного хранилища
type SessionStore interface {
	Put(sessionID, key string, value interface{}) error
	Get(sessionID, key string, dest interface{}) bool
}

// CMSClient интерфейс клиента CMS
type CMSClient interface {
	CreateExpressLead(ctx context.Context, lead *cms.ExpressLeadRequest) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
