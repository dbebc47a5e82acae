package remove_coupon

// ApplyCouponUseCase интерфейс use case купонов
type ApplyCouponUseCase interface {
	Remove(sessionID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
