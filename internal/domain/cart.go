package domain

import (
	"math"
	"time"
)

// CartItem is a (serviceId, quantity) entry of a session cart.
// Quantity is never persisted as zero or negative: removal deletes the entry
type CartItem struct {
	ServiceID string    `json:"serviceId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// CartLine is a cart item joined with its resolved catalog service
type CartLine struct {
	CartItem
	Service   DoorstepService `json:"service"`
	LineTotal float64         `json:"lineTotal"`
}

// CartSummary is the derived view of a cart. It is recomputed on every
// query and never stored
type CartSummary struct {
	Items        []CartLine `json:"items"`
	ItemCount    int        `json:"itemCount"`    // total quantity
	ServiceCount int        `json:"serviceCount"` // distinct services
	Subtotal     float64    `json:"subtotal"`
	Discount     float64    `json:"discount"`
	Total        float64    `json:"total"`
	IsEmpty      bool       `json:"isEmpty"`
}

// CheckoutData is the projection of a cart summary expected by payment
// order creation. Amount is in rupees; conversion to the smallest
// currency subunit is the payment caller's responsibility
type CheckoutData struct {
	Amount       float64    `json:"amount"`
	Currency     string     `json:"currency"`
	ItemCount    int        `json:"itemCount"`
	ServiceCount int        `json:"serviceCount"`
	Items        []CartLine `json:"items"`
}

// CartSnapshot is the full cart state mirrored to the backend store.
// The mirror is advisory only: the session cart stays the source of truth
type CartSnapshot struct {
	SessionID string
	Items     []CartLine
	Subtotal  float64
	Discount  float64
	Total     float64
	UpdatedAt time.Time
}

// ComputeCartSummary derives the summary from cart items and the fixed
// catalog. Items referencing unknown services are skipped: they can only
// appear if the catalog shrank between releases
func ComputeCartSummary(items []CartItem) CartSummary {
	summary := CartSummary{Items: make([]CartLine, 0, len(items))}

	for _, item := range items {
		service, ok := FindDoorstepService(item.ServiceID)
		if !ok {
			continue
		}

		line := CartLine{
			CartItem:  item,
			Service:   *service,
			LineTotal: service.Price * float64(item.Quantity),
		}
		summary.Items = append(summary.Items, line)
		summary.ItemCount += item.Quantity
		summary.ServiceCount++
		summary.Subtotal += line.LineTotal
	}

	if summary.ServiceCount >= BulkDiscountMinServices {
		summary.Discount = math.Floor(summary.Subtotal * BulkDiscountRate)
	}

	summary.Total = summary.Subtotal - summary.Discount
	summary.IsEmpty = summary.ServiceCount == 0

	return summary
}
