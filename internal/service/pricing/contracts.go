package pricing

import (
	"context"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
)

// SheetLoader интерфейс загрузчика прайс-листа
type SheetLoader interface {
	LoadOrEmpty(ctx context.Context) []domain.PricingRow
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
