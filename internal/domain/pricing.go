package domain

import "strings"

// PricingRow is a parsed record of the CSV pricing sheet
// A row is identified by (FuelType, Brand, Model) case-insensitively;
// the sheet may contain duplicates, in which case encounter order decides
type PricingRow struct {
	FuelType string
	Brand    string
	Model    string

	PeriodicServicePrice   float64
	ExpressServicePrice    float64
	DiscountedExpressPrice float64
	DentPaintPrice         float64
	FullBodyPaintPrice     float64
	ACServicePrice         float64
}

// Matches reports whether the row matches the vehicle,
// comparing all three keys case-insensitively
func (r *PricingRow) Matches(v Vehicle) bool {
	return strings.EqualFold(r.Brand, v.Manufacturer) &&
		strings.EqualFold(r.Model, v.Model) &&
		strings.EqualFold(r.FuelType, v.FuelType)
}

// HasUsablePrice returns true if at least one of the four core price
// columns is positive. Rows with all-zero core prices are a data-quality
// problem and must not be offered as selectable options
func (r *PricingRow) HasUsablePrice() bool {
	return r.PeriodicServicePrice > 0 ||
		r.ExpressServicePrice > 0 ||
		r.DiscountedExpressPrice > 0 ||
		r.DentPaintPrice > 0
}

// PricingData is the resolved projection of a matched PricingRow.
// Blank or unparsable cells arrive here as 0, so a resolved-but-incomplete
// row is indistinguishable from a free service for that field
type PricingData struct {
	PeriodicServicePrice   float64 `json:"periodicServicePrice"`
	ExpressServicePrice    float64 `json:"expressServicePrice"`
	DiscountedExpressPrice float64 `json:"discountedExpressPrice"`
	DentPaintPrice         float64 `json:"dentPaintPrice"`
	FullBodyPaintPrice     float64 `json:"fullBodyPaintPrice"`
	ACServicePrice         float64 `json:"acServicePrice"`
}

// ToPricingData projects the row into its numeric fields
func (r *PricingRow) ToPricingData() PricingData {
	return PricingData{
		PeriodicServicePrice:   r.PeriodicServicePrice,
		ExpressServicePrice:    r.ExpressServicePrice,
		DiscountedExpressPrice: r.DiscountedExpressPrice,
		DentPaintPrice:         r.DentPaintPrice,
		FullBodyPaintPrice:     r.FullBodyPaintPrice,
		ACServicePrice:         r.ACServicePrice,
	}
}

// AutoDiscountAmount returns the express-service discount implied by the
// sheet (express price minus discounted express price), or 0 when either
// side is missing
func (d PricingData) AutoDiscountAmount() float64 {
	if d.ExpressServicePrice <= 0 || d.DiscountedExpressPrice <= 0 {
		return 0
	}
	if d.DiscountedExpressPrice >= d.ExpressServicePrice {
		return 0
	}
	return d.ExpressServicePrice - d.DiscountedExpressPrice
}
