package cms

import "encoding/json"

// ExpressLeadRequest запрос на создание экспресс-лида (фаза 1)
type ExpressLeadRequest struct {
	MobileNumber string  `json:"mobileNumber"`
	ServiceType  string  `json:"serviceType"`
	CarBrand     string  `json:"carBrand"`
	CarModel     string  `json:"carModel"`
	FuelType     string  `json:"fuel_type"`
	ServicePrice float64 `json:"servicePrice"`
	CouponCode   *string `json:"couponCode,omitempty"`
	FinalPrice   float64 `json:"finalPrice"`
}

// ExpressLeadUpdateRequest запрос на обновление лида расписанием (фаза 2)
type ExpressLeadUpdateRequest struct {
	TimeSlot     string  `json:"timeSlot"`
	ServiceDate  string  `json:"serviceDate"` // YYYY-MM-DD
	ServicePrice float64 `json:"servicePrice"`
	CouponCode   *string `json:"couponCode,omitempty"`
	FinalPrice   float64 `json:"finalPrice"`
}

// expressLeadResponse ответ CMS на создание лида
type expressLeadResponse struct {
	Data struct {
		ID int64 `json:"id"`
	} `json:"data"`
}

// couponValidateRequest запрос на валидацию купона
type couponValidateRequest struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// CouponTerms условия купона, возвращаемые CMS
// Для percentage-купонов CMS присылает уже вычисленную сумму скидки
// (discountAmount); клиентская процентная математика не воспроизводится
type CouponTerms struct {
	Code           string   `json:"code"`
	DiscountType   string   `json:"discountType"`
	DiscountAmount *float64 `json:"discountAmount,omitempty"`
	DiscountValue  *float64 `json:"discountValue,omitempty"`
}

// Amount возвращает сумму скидки: discountAmount, либо discountValue
// как fallback для fixed-купонов
func (t *CouponTerms) Amount() float64 {
	if t.DiscountAmount != nil {
		return *t.DiscountAmount
	}
	if t.DiscountValue != nil {
		return *t.DiscountValue
	}
	return 0
}

// couponValidateResponse ответ CMS на валидацию купона
type couponValidateResponse struct {
	Valid  bool            `json:"valid"`
	Coupon *CouponTerms    `json:"coupon,omitempty"`
	Error  json.RawMessage `json:"error,omitempty"`
}
