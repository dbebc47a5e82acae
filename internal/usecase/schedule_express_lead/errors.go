package schedule_express_lead

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате обслуживания
	ErrInvalidDate = errors.New("schedule_express_lead: invalid service date")

	// ErrInvalidSlot возвращается, когда слот не входит в фиксированный каталог
	ErrInvalidSlot = errors.New("schedule_express_lead: invalid time slot")

	// ErrNoMobile возвращается, когда в сессии нет номера для прозрачного
	// создания лида (фаза 2 без фазы 1 и без сохраненного номера)
	ErrNoMobile = errors.New("schedule_express_lead: no mobile number in session")

	// ErrNoVehicle возвращается, когда в сессии нет выбранного автомобиля
	ErrNoVehicle = errors.New("schedule_express_lead: no vehicle selected")

	// ErrLeadNotFound возвращается, когда кешированный лид пропал из CMS
	ErrLeadNotFound = errors.New("schedule_express_lead: lead not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_express_lead: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_express_lead: internal error")
)
