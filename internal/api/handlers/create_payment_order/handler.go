package create_payment_order

import (
	"errors"
	"net/http"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/middleware"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/checkout"
)

const (
	msgEmptyCart         = "cart is empty"
	msgOrderCreateFailed = "payment order creation failed, please try again"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/payment-order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &checkout.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			h.logger.Warn("POST /checkout/payment-order - empty cart for session=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, checkout.ErrOrderCreateFailed):
			// Заказ не создан, повтор безопасен
			h.logger.Error("POST /checkout/payment-order - order creation failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgOrderCreateFailed)

		default:
			h.logger.Error("POST /checkout/payment-order - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/payment-order - order id=%s for session=%s", result.OrderID, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
