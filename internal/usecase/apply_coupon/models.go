package apply_coupon

// Request модель запроса на применение купона
type Request struct {
	SessionID string
	Code      string  // Код купона, нормализуется к верхнему регистру
	Amount    float64 // Сумма заказа до купона
}

// Response модель ответа с примененным купоном
type Response struct {
	Code           string
	DiscountType   string
	DiscountAmount float64
	FinalPrice     float64 // Amount минус скидка, не ниже нуля
}
