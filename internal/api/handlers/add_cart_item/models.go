package add_cart_item

import "github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"

// AddItemRequest HTTP request model
type AddItemRequest struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"quantity"`
}

// AddItemResponse HTTP response model
type AddItemResponse struct {
	Line    domain.CartLine    `json:"line"`
	Summary domain.CartSummary `json:"summary"`
}
