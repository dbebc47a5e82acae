package get_manufacturers

// PricingService интерфейс резолвера цен
type PricingService interface {
	ListManufacturers() []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
