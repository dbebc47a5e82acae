package get_fuel_types

// PricingService интерфейс резолвера цен
type PricingService interface {
	ListFuelTypes(manufacturer, model string) []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
