package create_express_lead

import "errors"

var (
	// ErrInvalidMobile возвращается при некорректном мобильном номере
	// Проверяется до любого сетевого вызова
	ErrInvalidMobile = errors.New("create_express_lead: invalid mobile number")

	// ErrNoVehicle возвращается, когда автомобиль не передан и не выбран в сессии
	ErrNoVehicle = errors.New("create_express_lead: no vehicle selected")

	// ErrPricingUnavailable возвращается, когда для автомобиля нет цены
	ErrPricingUnavailable = errors.New("create_express_lead: pricing unavailable for vehicle")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_express_lead: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_express_lead: internal error")
)
