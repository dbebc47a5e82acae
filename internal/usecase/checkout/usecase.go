package checkout

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// UseCase use case создания платежного заказа по корзине
// Купоны к корзине не применяются, они действуют только на экспресс-лиды.
// Скидка корзины за объем уже учтена в CheckoutData
type UseCase struct {
	cart           CartService
	payments       PaymentClient
	whatsAppNumber string
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cart CartService, payments PaymentClient, whatsAppNumber string, logger Logger) *UseCase {
	return &UseCase{
		cart:           cart,
		payments:       payments,
		whatsAppNumber: whatsAppNumber,
		logger:         logger,
	}
}

// Execute выполняет use case создания платежного заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	data := uc.cart.GetCheckoutData(req.SessionID)
	if data.ItemCount == 0 || data.Amount <= 0 {
		uc.logger.Warn("Checkout: empty cart for session=%s", req.SessionID)
		return nil, ErrEmptyCart
	}

	// Шлюз принимает сумму в минимальных единицах валюты
	amountMinor := int64(math.Round(data.Amount * 100))
	receipt := "cart_" + uuid.NewString()

	uc.logger.Info("Checkout: session=%s, amount=%.2f (%d minor), items=%d",
		req.SessionID, data.Amount, amountMinor, data.ItemCount)

	order, err := uc.payments.CreateOrder(ctx, amountMinor, receipt, map[string]string{
		"source":       "doorstep_cart",
		"serviceCount": fmt.Sprintf("%d", data.ServiceCount),
	})
	if err != nil {
		uc.logger.Error("Checkout: order creation failed for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrOrderCreateFailed, err)
	}

	uc.logger.Info("Checkout: order id=%s created for session=%s", order.ID, req.SessionID)

	return &Response{
		OrderID:      order.ID,
		Amount:       data.Amount,
		AmountMinor:  amountMinor,
		Currency:     uc.payments.Currency(),
		Items:        data.Items,
		WhatsAppLink: uc.whatsAppLink(order.ID, data.Amount),
	}, nil
}

// whatsAppLink собирает deep link подтверждения заказа в WhatsApp
func (uc *UseCase) whatsAppLink(orderID string, amount float64) string {
	var sb strings.Builder
	sb.WriteString("Hi! I have placed a doorstep service order.\n")
	sb.WriteString(fmt.Sprintf("Order ID: %s\n", orderID))
	sb.WriteString(fmt.Sprintf("Amount: Rs. %.2f", amount))

	return fmt.Sprintf("https://wa.me/%s?text=%s", uc.whatsAppNumber, url.QueryEscape(sb.String()))
}
