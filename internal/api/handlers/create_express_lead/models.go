package create_express_lead

import (
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	createLead "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/create_express_lead"
)

// CreateLeadRequest HTTP request model
// Автомобиль опционален: без него берется выбранный в сессии
type CreateLeadRequest struct {
	MobileNumber string `json:"mobileNumber"`
	ServiceType  string `json:"serviceType,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Model        string `json:"model,omitempty"`
	FuelType     string `json:"fuelType,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateLeadRequest) ToUseCaseRequest(sessionID string) *createLead.Request {
	return &createLead.Request{
		SessionID:    sessionID,
		MobileNumber: r.MobileNumber,
		ServiceType:  r.ServiceType,
		Vehicle: domain.Vehicle{
			Manufacturer: r.Manufacturer,
			Model:        r.Model,
			FuelType:     r.FuelType,
		},
	}
}

// LeadResponse HTTP response model
type LeadResponse struct {
	LeadID             int64   `json:"leadId"`
	ServicePrice       float64 `json:"servicePrice"`
	DiscountedPrice    float64 `json:"discountedPrice"`
	AutoDiscountAmount float64 `json:"autoDiscountAmount"`
	AdditionalDiscount float64 `json:"additionalDiscount"`
	FinalPrice         float64 `json:"finalPrice"`
	CouponCode         *string `json:"couponCode,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *createLead.Response) LeadResponse {
	return LeadResponse{
		LeadID:             result.LeadID,
		ServicePrice:       result.ServicePrice,
		DiscountedPrice:    result.DiscountedPrice,
		AutoDiscountAmount: result.AutoDiscountAmount,
		AdditionalDiscount: result.AdditionalDiscount,
		FinalPrice:         result.FinalPrice,
		CouponCode:         result.CouponCode,
	}
}
