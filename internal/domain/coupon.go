package domain

// DiscountType represents how a coupon discounts a total
type DiscountType string

const (
	DiscountPercentage  DiscountType = "percentage"
	DiscountFixed       DiscountType = "fixed"
	DiscountFreeShipping DiscountType = "free_shipping"
)

// AppliedCoupon is the client-side subset of a coupon: the code plus the
// server-computed discount amount. Coupon lifecycle (validity windows,
// usage caps, min purchase) is owned entirely by the CMS
type AppliedCoupon struct {
	Code           string       `json:"code"`
	DiscountType   DiscountType `json:"discountType"`
	DiscountAmount float64      `json:"discountAmount"`
}
