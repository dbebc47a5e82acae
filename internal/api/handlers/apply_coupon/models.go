package apply_coupon

// ApplyCouponRequest HTTP request model
type ApplyCouponRequest struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// ApplyCouponResponse HTTP response model
type ApplyCouponResponse struct {
	Code           string  `json:"code"`
	DiscountType   string  `json:"discountType"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
}
