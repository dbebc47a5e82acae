package resolve_pricing

import "github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"

// PricingResponse HTTP response model
type PricingResponse struct {
	Manufacturer string             `json:"manufacturer"`
	Model        string             `json:"model"`
	FuelType     string             `json:"fuelType"`
	Pricing      domain.PricingData `json:"pricing"`
	AutoDiscount float64            `json:"autoDiscount"`
}
