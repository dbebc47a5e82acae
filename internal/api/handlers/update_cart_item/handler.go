package update_cart_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/middleware"
	cartService "github.com/gaadimech/GaadiMech-PWA-sub001/internal/service/cart"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownService     = "unknown service"
)

type Handler struct {
	cart   CartService
	logger Logger
}

func NewHandler(cart CartService, logger Logger) *Handler {
	return &Handler{
		cart:   cart,
		logger: logger,
	}
}

// Handle PATCH /api/v1/cart/items/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	serviceID := mux.Vars(r)["serviceId"]

	var req UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /cart/items/%s - invalid request body: %v", serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.cart.UpdateQuantity(r.Context(), sessionID, serviceID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, cartService.ErrUnknownService):
			h.logger.Warn("PATCH /cart/items/%s - unknown service", serviceID)
			handlers.RespondNotFound(w, msgUnknownService)

		default:
			h.logger.Error("PATCH /cart/items/%s - failed: %v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /cart/items/%s - qty=%d for session=%s", serviceID, req.Quantity, sessionID)
	handlers.RespondJSON(w, http.StatusOK, h.cart.GetCartSummary(sessionID))
}
