package get_models

// PricingService интерфейс резолвера цен
type PricingService interface {
	ListModels(manufacturer string) []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
