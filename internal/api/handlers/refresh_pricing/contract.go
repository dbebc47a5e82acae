package refresh_pricing

import "context"

// PricingService интерфейс резолвера цен
type PricingService interface {
	Refresh(ctx context.Context) int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
