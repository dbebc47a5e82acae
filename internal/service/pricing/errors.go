package pricing

import "errors"

var (
	// ErrNoPricingMatch возвращается, когда для выбранного автомобиля нет
	// строки прайс-листа. Вызывающая сторона показывает "цена недоступна",
	// а не нулевую цену
	ErrNoPricingMatch = errors.New("pricing: no pricing row matches the vehicle")

	// ErrIncompleteVehicle возвращается, когда не заданы все три ключа поиска
	ErrIncompleteVehicle = errors.New("pricing: manufacturer, model and fuel type are required")
)
