package resolve_pricing

import "github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"

// PricingService интерфейс резолвера цен
type PricingService interface {
	ResolvePricing(vehicle domain.Vehicle) (*domain.PricingData, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
