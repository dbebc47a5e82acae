package create_express_lead

import "github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"

// Request модель запроса на создание экспресс-лида (фаза 1)
// Vehicle опционален: если не передан, берется выбранный в сессии
type Request struct {
	SessionID    string
	MobileNumber string
	Vehicle      domain.Vehicle
	ServiceType  string // express | periodic, по умолчанию express
}

// Response модель ответа с созданным лидом
type Response struct {
	LeadID int64

	ServicePrice       float64 // цена экспресс-сервиса по прайс-листу
	DiscountedPrice    float64 // цена со скидкой прайс-листа
	AutoDiscountAmount float64 // скидка прайс-листа (разница двух цен)
	AdditionalDiscount float64 // скидка примененного купона
	FinalPrice         float64

	CouponCode *string
}
