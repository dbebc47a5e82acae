package domain

// Business rule constants
const (
	// BulkDiscountMinServices минимальное число различных услуг в корзине
	// для применения оптовой скидки
	BulkDiscountMinServices = 3

	// BulkDiscountRate размер оптовой скидки (5% от подытога)
	BulkDiscountRate = 0.05

	// ExpressSlotDurationMinutes длительность экспресс-слота
	ExpressSlotDurationMinutes = 120

	// ExpressAdvanceBookingDays максимальный горизонт бронирования
	ExpressAdvanceBookingDays = 14

	// ExpressMinNoticeMinutes минимальное время до начала слота при
	// бронировании на сегодня
	ExpressMinNoticeMinutes = 60

	// Currency валюта всех цен сервиса
	Currency = "INR"
)

// Express service types
const (
	ServiceTypeExpress  = "express"
	ServiceTypePeriodic = "periodic"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MobileNumberPattern валидация индийского мобильного номера:
// начинается с 6-9, ровно 10 цифр
const MobileNumberPattern = `^[6-9][0-9]{9}$`
